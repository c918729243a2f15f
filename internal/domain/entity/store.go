package entity

import (
	"time"
)

// Store is a seller's shop, distinct from the state containers in
// internal/state.
type Store struct {
	ID          string `json:"id" firestore:"id"`
	OwnerID     string `json:"owner_id" firestore:"ownerId"`
	Name        string `json:"name" firestore:"name"`
	Slug        string `json:"slug" firestore:"slug"`
	Description string `json:"description" firestore:"description"`
	LogoURL     string `json:"logo_url,omitempty" firestore:"logoUrl,omitempty"`
	BannerURL   string `json:"banner_url,omitempty" firestore:"bannerUrl,omitempty"`

	Street     string `json:"street,omitempty" firestore:"street,omitempty"`
	City       string `json:"city,omitempty" firestore:"city,omitempty"`
	Province   string `json:"province,omitempty" firestore:"province,omitempty"`
	PostalCode string `json:"postal_code,omitempty" firestore:"postalCode,omitempty"`

	ProductCount int     `json:"product_count" firestore:"productCount"`
	Rating       float64 `json:"rating" firestore:"rating"`

	IsActive  bool      `json:"is_active" firestore:"isActive"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
