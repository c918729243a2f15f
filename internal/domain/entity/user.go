package entity

import (
	"time"
)

type User struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	Name      string    `json:"name" firestore:"name"`
	Phone     string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty" firestore:"avatarUrl,omitempty"`
	Provider  string    `json:"provider,omitempty" firestore:"provider,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Address is a shipping address. At most one address per user carries
// IsDefault, enforced by the session container's SetDefaultAddress.
type Address struct {
	ID         string `json:"id" firestore:"id"`
	Label      string `json:"label" firestore:"label"`
	Recipient  string `json:"recipient" firestore:"recipient"`
	Phone      string `json:"phone" firestore:"phone"`
	Street     string `json:"street" firestore:"street"`
	City       string `json:"city" firestore:"city"`
	Province   string `json:"province" firestore:"province"`
	PostalCode string `json:"postal_code" firestore:"postalCode"`
	IsDefault  bool   `json:"is_default" firestore:"isDefault"`
}
