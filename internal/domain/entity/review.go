package entity

import (
	"time"
)

// Reply is the single authoritative business response to a review. A review
// holds at most one; there is never an ordered collection of replies.
type Reply struct {
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Review lives in the reviews subcollection of its business. Reports are a
// child collection under the review itself.
type Review struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Comment   string    `json:"comment" firestore:"comment"`
	Reported  bool      `json:"reported" firestore:"reported"`
	Reply     *Reply    `json:"reply,omitempty" firestore:"reply,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
	ReportStatusRejected = "rejected"
)

type Report struct {
	ID         string     `json:"id" firestore:"id"`
	Reason     string     `json:"reason" firestore:"reason"`
	Details    string     `json:"details,omitempty" firestore:"details,omitempty"`
	Status     string     `json:"status" firestore:"status"`
	CreatedAt  time.Time  `json:"created_at" firestore:"createdAt"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty" firestore:"resolvedAt,omitempty"`
	ResolvedBy string     `json:"resolved_by,omitempty" firestore:"resolvedBy,omitempty"`
}
