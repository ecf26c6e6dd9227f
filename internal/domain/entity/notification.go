package entity

import (
	"time"
)

const NotificationTypeNewReply = "new_review_reply"

// Notification is the fan-out record created when a business answers a
// review. It denormalizes the business name and photo for display and is an
// immutable inbox trail: deleting the reply later does not touch it.
type Notification struct {
	ID               string    `json:"id" firestore:"id"`
	Type             string    `json:"type" firestore:"type"`
	BusinessID       string    `json:"business_id" firestore:"businessId"`
	BusinessName     string    `json:"business_name" firestore:"businessName"`
	BusinessPhotoURL string    `json:"business_photo_url,omitempty" firestore:"businessPhotoURL,omitempty"`
	ReviewID         string    `json:"review_id" firestore:"reviewId"`
	ReviewContent    string    `json:"review_content" firestore:"reviewContent"`
	ReplyContent     string    `json:"reply_content" firestore:"replyContent"`
	RecipientID      string    `json:"recipient_id" firestore:"recipientId"`
	Read             bool      `json:"read" firestore:"read"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
}

// NotificationRecipient lives in the recipients subcollection of its
// notification. The current trigger writes exactly one, but the child
// collection keeps the door open for multi-recipient fan-out.
type NotificationRecipient struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	Read      bool      `json:"read" firestore:"read"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
