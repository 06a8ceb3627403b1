package repository

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/anilkedia87/gstbill/internal/invoice/domain"
)

func newDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Record{}))
	return db
}

func newRecord(id int64, number string) *domain.Record {
	return &domain.Record{
		ID:         snowflake.ID(id),
		Number:     number,
		Sequence:   id,
		IssueDate:  time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC),
		BuyerName:  "Acme Traders",
		GrandTotal: "105.00",
		Document:   datatypes.JSON([]byte(`{}`)),
	}
}

func TestInsert_DuplicateNumber(t *testing.T) {
	repo := New(Params{DB: newDB(t)})
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, newRecord(1, "GST-20250409-0001")))

	err := repo.Insert(ctx, newRecord(2, "GST-20250409-0001"))
	assert.ErrorIs(t, err, domain.ErrDuplicateNumber)
}

func TestFindByNumber_Missing(t *testing.T) {
	repo := New(Params{DB: newDB(t)})

	_, err := repo.FindByNumber(context.Background(), "GST-20250409-9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
