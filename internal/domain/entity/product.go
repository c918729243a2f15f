package entity

import (
	"time"
)

type VariantOption struct {
	Value           string  `json:"value" firestore:"value"`
	PriceAdjustment float64 `json:"price_adjustment,omitempty" firestore:"priceAdjustment,omitempty"`
	Stock           *int    `json:"stock,omitempty" firestore:"stock,omitempty"`
	Image           string  `json:"image,omitempty" firestore:"image,omitempty"`
}

type ProductVariant struct {
	Type    string          `json:"type" firestore:"type"` // color, size, other
	Options []VariantOption `json:"options" firestore:"options"`
}

type Product struct {
	ID            string           `json:"id" firestore:"id"`
	StoreID       string           `json:"store_id" firestore:"storeId"`
	CategoryID    string           `json:"category_id" firestore:"categoryId"`
	Name          string           `json:"name" firestore:"name"`
	Slug          string           `json:"slug" firestore:"slug"`
	Description   string           `json:"description" firestore:"description"`
	Images        []string         `json:"images" firestore:"images"`
	Price         float64          `json:"price" firestore:"price"`
	DiscountPrice *float64         `json:"discount_price,omitempty" firestore:"discountPrice,omitempty"`
	Stock         int              `json:"stock" firestore:"stock"`
	Variants      []ProductVariant `json:"variants,omitempty" firestore:"variants,omitempty"`

	Rating       float64 `json:"rating" firestore:"rating"`
	TotalReviews int     `json:"total_reviews" firestore:"totalReviews"`
	TotalSold    int     `json:"total_sold" firestore:"totalSold"`

	IsActive  bool      `json:"is_active" firestore:"isActive"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// EffectivePrice is the discount price when one is set and actually lower
// than the list price, otherwise the list price. A discount price is never
// assumed lower without checking.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice < p.Price {
		return *p.DiscountPrice
	}
	return p.Price
}
