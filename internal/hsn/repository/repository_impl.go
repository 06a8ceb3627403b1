package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/anilkedia87/gstbill/internal/hsn/domain"
	pkgdb "github.com/anilkedia87/gstbill/pkg/db"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	err := r.db.WithContext(ctx).
		Model(&domain.Record{}).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) Insert(ctx context.Context, rec *domain.Record) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateCode, rec.Code)
		}
		return err
	}
	return nil
}
