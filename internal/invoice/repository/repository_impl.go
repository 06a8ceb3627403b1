package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/anilkedia87/gstbill/internal/invoice/domain"
	pkgdb "github.com/anilkedia87/gstbill/pkg/db"
)

type repository struct {
	db *gorm.DB
}

type Params struct {
	fx.In

	DB *gorm.DB
}

func New(p Params) domain.Repository {
	return &repository{db: p.DB}
}

func (r *repository) Insert(ctx context.Context, record *domain.Record) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if pkgdb.IsDuplicateKeyErr(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateNumber, record.Number)
		}
		return err
	}
	return nil
}

func (r *repository) FindByNumber(ctx context.Context, number string) (*domain.Record, error) {
	var record domain.Record
	err := r.db.WithContext(ctx).Where("number = ?", number).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository) List(ctx context.Context) ([]domain.Record, error) {
	var records []domain.Record
	if err := r.db.WithContext(ctx).
		Order("issue_date desc, sequence desc").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
