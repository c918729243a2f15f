package entity

import (
	"time"
)

type Voucher struct {
	ID          string    `json:"id" firestore:"id"`
	StoreID     string    `json:"store_id,omitempty" firestore:"storeId,omitempty"` // empty means marketplace-wide
	Code        string    `json:"code" firestore:"code"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Type        string    `json:"type" firestore:"type"` // percent, fixed
	Amount      float64   `json:"amount" firestore:"amount"`
	MinPurchase float64   `json:"min_purchase" firestore:"minPurchase"`
	MaxDiscount float64   `json:"max_discount,omitempty" firestore:"maxDiscount,omitempty"`
	ExpiresAt   time.Time `json:"expires_at" firestore:"expiresAt"`
	IsActive    bool      `json:"is_active" firestore:"isActive"`
}

// DiscountFor computes the amount taken off a subtotal, or 0 when the
// subtotal does not meet the minimum purchase.
func (v *Voucher) DiscountFor(subtotal float64) float64 {
	if subtotal < v.MinPurchase {
		return 0
	}

	var discount float64
	switch v.Type {
	case "percent":
		discount = subtotal * v.Amount / 100
		if v.MaxDiscount > 0 && discount > v.MaxDiscount {
			discount = v.MaxDiscount
		}
	case "fixed":
		discount = v.Amount
	}

	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

// Usable reports whether the voucher can currently be redeemed.
func (v *Voucher) Usable(now time.Time) bool {
	return v.IsActive && now.Before(v.ExpiresAt)
}
