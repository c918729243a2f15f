package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lokapasar/internal/domain/entity"
	"lokapasar/pkg/errors"
)

func TestApplyCodePercentVoucher(t *testing.T) {
	ctx := context.Background()
	uc := NewVoucherUseCase(newFakeVoucherRepo(&entity.Voucher{
		Code:        "HEMAT10",
		Type:        "percent",
		Amount:      10,
		MinPurchase: 50000,
		MaxDiscount: 20000,
		ExpiresAt:   time.Now().Add(24 * time.Hour),
		IsActive:    true,
	}))

	quote, err := uc.ApplyCode(ctx, "HEMAT10", 100000)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, quote.Discount)
	assert.Equal(t, 90000.0, quote.Total)

	quote, err = uc.ApplyCode(ctx, "HEMAT10", 500000)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, quote.Discount, "percent discount is capped")
}

func TestApplyCodeBelowMinimumPurchase(t *testing.T) {
	ctx := context.Background()
	uc := NewVoucherUseCase(newFakeVoucherRepo(&entity.Voucher{
		Code:        "HEMAT10",
		Type:        "percent",
		Amount:      10,
		MinPurchase: 50000,
		ExpiresAt:   time.Now().Add(24 * time.Hour),
		IsActive:    true,
	}))

	_, err := uc.ApplyCode(ctx, "HEMAT10", 49999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestApplyCodeExpiredVoucher(t *testing.T) {
	ctx := context.Background()
	uc := NewVoucherUseCase(newFakeVoucherRepo(&entity.Voucher{
		Code:      "LAMA",
		Type:      "fixed",
		Amount:    5000,
		ExpiresAt: time.Now().Add(-time.Hour),
		IsActive:  true,
	}))

	_, err := uc.ApplyCode(ctx, "LAMA", 100000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestApplyCodeInactiveVoucher(t *testing.T) {
	ctx := context.Background()
	uc := NewVoucherUseCase(newFakeVoucherRepo(&entity.Voucher{
		Code:      "MATI",
		Type:      "fixed",
		Amount:    5000,
		ExpiresAt: time.Now().Add(time.Hour),
		IsActive:  false,
	}))

	_, err := uc.ApplyCode(ctx, "MATI", 100000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestApplyCodeUnknownVoucher(t *testing.T) {
	ctx := context.Background()
	uc := NewVoucherUseCase(newFakeVoucherRepo())

	_, err := uc.ApplyCode(ctx, "NOPE", 100000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
