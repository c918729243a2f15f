package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"lokapasar/internal/domain/entity"
	"lokapasar/internal/domain/repository"
	"lokapasar/pkg/errors"
)

type firestoreVoucherRepository struct {
	client *firestore.Client
}

func NewFirestoreVoucherRepository(client *firestore.Client) repository.VoucherRepository {
	return &firestoreVoucherRepository{
		client: client,
	}
}

func (r *firestoreVoucherRepository) ListActive(ctx context.Context, storeID string) ([]*entity.Voucher, error) {
	query := r.client.Collection("vouchers").
		Where("isActive", "==", true).
		Where("storeId", "==", storeID)

	iter := query.Documents(ctx)
	now := time.Now()

	var vouchers []*entity.Voucher
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate vouchers", err)
		}
		var voucher entity.Voucher
		if err := doc.DataTo(&voucher); err != nil {
			return nil, errors.Internal("Failed to parse voucher data", err)
		}
		if voucher.Usable(now) {
			vouchers = append(vouchers, &voucher)
		}
	}

	return vouchers, nil
}

func (r *firestoreVoucherRepository) GetByCode(ctx context.Context, code string) (*entity.Voucher, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	iter := r.client.Collection("vouchers").Where("code", "==", code).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Voucher", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to get voucher", err)
	}

	var voucher entity.Voucher
	if err := doc.DataTo(&voucher); err != nil {
		return nil, errors.Internal("Failed to parse voucher data", err)
	}

	return &voucher, nil
}
