package entity

import (
	"time"
)

// Business is a listed commerce. Category membership is stored by category
// NAME, not ID: the category registry is only consulted for display color,
// and existing data relies on name matching.
type Business struct {
	ID               string    `json:"id" firestore:"id"`
	Name             string    `json:"name" firestore:"name"`
	Description      string    `json:"description" firestore:"description"`
	ShortDescription string    `json:"short_description" firestore:"shortDescription"`
	Address          string    `json:"address" firestore:"address"`
	Phone            string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Website          string    `json:"website,omitempty" firestore:"website,omitempty"`
	Instagram        string    `json:"instagram,omitempty" firestore:"instagram,omitempty"`
	Facebook         string    `json:"facebook,omitempty" firestore:"facebook,omitempty"`
	Whatsapp         string    `json:"whatsapp,omitempty" firestore:"whatsapp,omitempty"`
	Image            string    `json:"image,omitempty" firestore:"image,omitempty"`
	Categories       []string  `json:"categories" firestore:"categories"`
	IsActive         bool      `json:"is_active" firestore:"isActive"`
	PlanID           string    `json:"plan_id" firestore:"planId"`
	CreatedAt        time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Category struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Color     string    `json:"color" firestore:"color"`
	IsActive  bool      `json:"is_active" firestore:"isActive"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// Plan carries the billing tier a business pays for. Price is the primary
// ranking key of the catalog; the rest of the billing metadata lives with
// the billing collaborator.
type Plan struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Price     float64   `json:"price" firestore:"price"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
