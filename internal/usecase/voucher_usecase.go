package usecase

import (
	"context"
	"time"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

type VoucherUseCase struct {
	voucherRepo repository.VoucherRepository
}

func NewVoucherUseCase(voucherRepo repository.VoucherRepository) *VoucherUseCase {
	return &VoucherUseCase{
		voucherRepo: voucherRepo,
	}
}

func (uc *VoucherUseCase) ListVouchers(ctx context.Context, storeID string) ([]*entity.Voucher, error) {
	return uc.voucherRepo.ListActive(ctx, storeID)
}

// VoucherQuote is the outcome of applying a voucher code to a subtotal.
type VoucherQuote struct {
	Voucher  *entity.Voucher `json:"voucher"`
	Subtotal float64         `json:"subtotal"`
	Discount float64         `json:"discount"`
	Total    float64         `json:"total"`
}

func (uc *VoucherUseCase) ApplyCode(ctx context.Context, code string, subtotal float64) (*VoucherQuote, error) {
	voucher, err := uc.voucherRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if !voucher.Usable(time.Now()) {
		return nil, errors.BadRequest("Voucher is expired or inactive", nil)
	}

	discount := voucher.DiscountFor(subtotal)
	if discount == 0 {
		return nil, errors.BadRequest("Order does not meet the voucher's minimum purchase", nil)
	}

	return &VoucherQuote{
		Voucher:  voucher,
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
	}, nil
}
