package repository

import (
	"context"

	"lokapasar/internal/domain/entity"
)

type VoucherRepository interface {
	// ListActive returns redeemable vouchers; storeID "" lists
	// marketplace-wide vouchers only.
	ListActive(ctx context.Context, storeID string) ([]*entity.Voucher, error)
	GetByCode(ctx context.Context, code string) (*entity.Voucher, error)
}
