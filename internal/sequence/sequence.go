// Package sequence hands out monotonically increasing invoice sequence
// numbers, persisted so numbering survives restarts.
package sequence

import (
	"context"
	"errors"
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Counter is one named sequence row.
type Counter struct {
	Name      string    `gorm:"primaryKey;type:text"`
	Value     int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Counter) TableName() string { return "sequences" }

// Service allocates the next value of a named sequence.
type Service interface {
	Next(ctx context.Context, name string) (int64, error)
}

type service struct {
	db *gorm.DB
}

func New(db *gorm.DB) Service {
	return &service{db: db}
}

// Next increments and returns the counter inside one transaction. The row
// lock serializes concurrent allocations, so values are strictly
// monotonic and never reused.
func (s *service) Next(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, errors.New("sequence name is required")
	}

	var value int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter Counter
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", name).
			First(&counter).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			counter = Counter{Name: name}
		case err != nil:
			return err
		}

		counter.Value++
		counter.UpdatedAt = time.Now().UTC()
		if err := tx.Save(&counter).Error; err != nil {
			return err
		}
		value = counter.Value
		return nil
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

var Module = fx.Module("sequence",
	fx.Provide(New),
)
