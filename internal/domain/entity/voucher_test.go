package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVoucherDiscountForPercent(t *testing.T) {
	v := Voucher{Type: "percent", Amount: 10, MinPurchase: 50000, MaxDiscount: 20000}

	assert.Equal(t, 0.0, v.DiscountFor(40000), "below minimum purchase")
	assert.Equal(t, 10000.0, v.DiscountFor(100000))
	assert.Equal(t, 20000.0, v.DiscountFor(500000), "capped at max discount")
}

func TestVoucherDiscountForFixed(t *testing.T) {
	v := Voucher{Type: "fixed", Amount: 15000, MinPurchase: 10000}

	assert.Equal(t, 15000.0, v.DiscountFor(50000))
	assert.Equal(t, 12000.0, v.DiscountFor(12000), "never exceeds the subtotal")
}

func TestVoucherUsable(t *testing.T) {
	now := time.Now()
	active := Voucher{IsActive: true, ExpiresAt: now.Add(time.Hour)}
	expired := Voucher{IsActive: true, ExpiresAt: now.Add(-time.Hour)}
	inactive := Voucher{IsActive: false, ExpiresAt: now.Add(time.Hour)}

	assert.True(t, active.Usable(now))
	assert.False(t, expired.Usable(now))
	assert.False(t, inactive.Usable(now))
}
