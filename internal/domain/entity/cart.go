package entity

// CartItem couples a product snapshot with a quantity and an optional
// variant selection. The snapshot is copied in when the item is added and
// is not re-synced with later catalog changes.
type CartItem struct {
	Product  Product         `json:"product"`
	Quantity int             `json:"quantity"`
	Variant  SelectedVariant `json:"variant,omitempty"`
}

// Matches reports whether the item holds the given product with an
// equivalent variant selection.
func (i *CartItem) Matches(productID, variantKey string) bool {
	return i.Product.ID == productID && i.Variant.Encode() == variantKey
}

// Subtotal is the item's effective unit price times its quantity.
func (i *CartItem) Subtotal() float64 {
	return i.Product.EffectivePrice() * float64(i.Quantity)
}
