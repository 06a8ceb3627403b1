package service

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/anilkedia87/gstbill/internal/hsn/domain"
	"github.com/anilkedia87/gstbill/internal/hsn/registry"
	"github.com/anilkedia87/gstbill/internal/metrics"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	GenID    *snowflake.Node
	Registry *registry.Registry
	Repo     domain.Repository
	Metrics  *metrics.Metrics
}

type Service struct {
	log      *zap.Logger
	genID    *snowflake.Node
	registry *registry.Registry
	repo     domain.Repository
	metrics  *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("hsn.service"),
		genID:    p.GenID,
		registry: p.Registry,
		repo:     p.Repo,
		metrics:  p.Metrics,
	}
}

// Hydrate loads previously registered codes into the in-memory registry.
// Invoked once at startup, before the HTTP server accepts traffic.
func (s *Service) Hydrate(ctx context.Context) error {
	records, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for _, rec := range records {
		rate, err := decimal.NewFromString(rec.SuggestedRate)
		if err != nil {
			s.log.Warn("skipping persisted code with bad rate",
				zap.String("code", rec.Code), zap.String("rate", rec.SuggestedRate))
			continue
		}
		if _, err := s.registry.Register(rec.Code, rec.Description, rate); err != nil &&
			!errors.Is(err, domain.ErrDuplicateCode) {
			return err
		}
	}
	s.log.Info("hsn registry hydrated", zap.Int("persisted_codes", len(records)))
	return nil
}

func (s *Service) Lookup(code string) (domain.Entry, error) {
	entry, err := s.registry.Lookup(code)
	switch {
	case err == nil:
		s.metrics.RegistryLookup("hit")
	case errors.Is(err, domain.ErrNotFound):
		s.metrics.RegistryLookup("miss")
	}
	return entry, err
}

func (s *Service) Search(substring string) iter.Seq[domain.Entry] {
	return s.registry.Search(substring)
}

func (s *Service) Suggest(description string, limit int) []domain.Suggestion {
	return s.registry.Suggest(description, limit)
}

func (s *Service) Register(ctx context.Context, code, description string, rate decimal.Decimal) (domain.Entry, error) {
	entry, err := s.registry.Register(code, description, rate)
	if err != nil {
		return domain.Entry{}, err
	}

	rec := domain.Record{
		ID:            s.genID.Generate(),
		Code:          entry.Code,
		Description:   entry.Description,
		SuggestedRate: entry.SuggestedRate.String(),
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, &rec); err != nil {
		// Roll the in-memory entry back so a later retry is not rejected
		// as a duplicate of a code that was never persisted.
		if rbErr := s.registry.Unregister(entry.Code); rbErr != nil {
			s.log.Error("rolling back unpersisted code failed",
				zap.String("code", entry.Code), zap.Error(rbErr))
		}
		s.log.Error("persisting registered code failed",
			zap.String("code", entry.Code), zap.Error(err))
		return domain.Entry{}, err
	}
	return entry, nil
}
