package sequence

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Counter{}))
	return db
}

func TestNext_Monotonic(t *testing.T) {
	svc := New(newDB(t))
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := svc.Next(ctx, "invoice")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestNext_IndependentNames(t *testing.T) {
	svc := New(newDB(t))
	ctx := context.Background()

	first, err := svc.Next(ctx, "invoice")
	require.NoError(t, err)
	other, err := svc.Next(ctx, "credit_note")
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(1), other)
}

func TestNext_RequiresName(t *testing.T) {
	svc := New(newDB(t))
	_, err := svc.Next(context.Background(), "")
	assert.Error(t, err)
}
