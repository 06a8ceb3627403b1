package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/anilkedia87/gstbill/internal/hsn/domain"
	"github.com/anilkedia87/gstbill/internal/hsn/registry"
	"github.com/anilkedia87/gstbill/internal/hsn/repository"
	"github.com/anilkedia87/gstbill/internal/metrics"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Record{}))
	return db
}

func newSvc(t *testing.T, db *gorm.DB) *Service {
	t.Helper()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		Log:      zap.NewNop(),
		GenID:    node,
		Registry: registry.New(),
		Repo:     repository.NewRepository(db),
	})
	return svc.(*Service)
}

func TestRegisterPersistsAndSurvivesRestart(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	svc := newSvc(t, db)
	entry, err := svc.Register(ctx, "6403", "Leather footwear", decimal.NewFromInt(18))
	require.NoError(t, err)
	assert.Equal(t, "6403", entry.Code)

	// A fresh service over the same database sees the code after hydration.
	restarted := newSvc(t, db)
	_, err = restarted.Lookup("6403")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, restarted.Hydrate(ctx))
	got, err := restarted.Lookup("6403")
	require.NoError(t, err)
	assert.Equal(t, "Leather footwear", got.Description)
	assert.True(t, got.SuggestedRate.Equal(decimal.NewFromInt(18)))
}

func TestRegisterDuplicateDoesNotPersistTwice(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	svc := newSvc(t, db)
	_, err := svc.Register(ctx, "6403", "Leather footwear", decimal.NewFromInt(18))
	require.NoError(t, err)

	_, err = svc.Register(ctx, "6403", "Leather footwear", decimal.NewFromInt(18))
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)

	var count int64
	require.NoError(t, db.Model(&domain.Record{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterRetriesAfterFailedPersist(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	repo := &flakyRepo{inner: repository.NewRepository(db), failures: 1}
	svc := New(Params{
		Log:      zap.NewNop(),
		GenID:    node,
		Registry: registry.New(),
		Repo:     repo,
	}).(*Service)

	_, err = svc.Register(ctx, "6403", "Leather footwear", decimal.NewFromInt(18))
	require.Error(t, err)

	// The failed insert must not leave the code registered in memory.
	_, err = svc.Lookup("6403")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	entry, err := svc.Register(ctx, "6403", "Leather footwear", decimal.NewFromInt(18))
	require.NoError(t, err)
	assert.Equal(t, "6403", entry.Code)

	var count int64
	require.NoError(t, db.Model(&domain.Record{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLookupRecordsOutcomeMetrics(t *testing.T) {
	promRegistry := prometheus.NewRegistry()
	restore := swapPrometheusRegistry(promRegistry)
	defer restore()

	db := newDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		Log:      zap.NewNop(),
		GenID:    node,
		Registry: registry.New(),
		Repo:     repository.NewRepository(db),
		Metrics:  metrics.New(),
	}).(*Service)

	_, err = svc.Lookup("8471")
	require.NoError(t, err)
	_, err = svc.Lookup("8471")
	require.NoError(t, err)
	_, err = svc.Lookup("0000")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	hits := getCounterValue(t, promRegistry, "gstbill_hsn_lookups_total", map[string]string{"outcome": "hit"})
	misses := getCounterValue(t, promRegistry, "gstbill_hsn_lookups_total", map[string]string{"outcome": "miss"})
	assert.Equal(t, float64(2), hits)
	assert.Equal(t, float64(1), misses)
}

func TestHydrateSkipsBadRates(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&domain.Record{
		ID:            snowflake.ID(1),
		Code:          "6403",
		Description:   "Leather footwear",
		SuggestedRate: "not-a-number",
	}).Error)

	svc := newSvc(t, db)
	require.NoError(t, svc.Hydrate(ctx))

	_, err := svc.Lookup("6403")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// flakyRepo fails the first failures inserts, then delegates.
type flakyRepo struct {
	inner    domain.Repository
	failures int
}

func (r *flakyRepo) List(ctx context.Context) ([]domain.Record, error) {
	return r.inner.List(ctx)
}

func (r *flakyRepo) Insert(ctx context.Context, rec *domain.Record) error {
	if r.failures > 0 {
		r.failures--
		return errors.New("insert failed")
	}
	return r.inner.Insert(ctx, rec)
}

func swapPrometheusRegistry(promRegistry *prometheus.Registry) func() {
	oldRegisterer := prometheus.DefaultRegisterer
	oldGatherer := prometheus.DefaultGatherer
	prometheus.DefaultRegisterer = promRegistry
	prometheus.DefaultGatherer = promRegistry
	return func() {
		prometheus.DefaultRegisterer = oldRegisterer
		prometheus.DefaultGatherer = oldGatherer
	}
}

func getCounterValue(t *testing.T, promRegistry *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	metricFamilies, err := promRegistry.Gather()
	require.NoError(t, err)
	for _, mf := range metricFamilies {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.Metric {
			if !labelsMatch(metric, labels) {
				continue
			}
			require.NotNil(t, metric.Counter, "metric %s is not a counter", name)
			return metric.GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s with labels %v not found", name, labels)
	return 0
}

func labelsMatch(metric *dto.Metric, labels map[string]string) bool {
	if len(metric.Label) != len(labels) {
		return false
	}
	for _, pair := range metric.Label {
		if labels[pair.GetName()] != pair.GetValue() {
			return false
		}
	}
	return true
}
