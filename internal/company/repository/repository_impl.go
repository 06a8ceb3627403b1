package repository

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/anilkedia87/gstbill/internal/company/domain"
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

func (r *repository) Get(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).Order("id asc").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *repository) Upsert(ctx context.Context, profile *domain.Profile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}
