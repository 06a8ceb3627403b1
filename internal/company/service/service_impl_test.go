package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/anilkedia87/gstbill/internal/company/domain"
	"github.com/anilkedia87/gstbill/internal/company/repository"
	"github.com/anilkedia87/gstbill/internal/gst"
)

func newService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Profile{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.New(repository.Params{DB: db}),
	})
}

func TestSaveAndGetProfile(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, domain.SaveInput{
		Name:        "Acme Traders",
		GSTIN:       "21AAACB1234F1Z5",
		Address:     "Plot 4, Industrial Estate, Bhubaneswar",
		BankName:    "State Bank of India",
		BankAccount: "00112233445566",
		BankIFSC:    "SBIN0001234",
	})
	require.NoError(t, err)
	assert.Equal(t, "21", saved.StateCode)
	assert.Equal(t, "Odisha", saved.StateName)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, "Acme Traders", got.Name)
	assert.Equal(t, "21AAACB1234F1Z5", got.GSTIN)
}

func TestSaveUpdatesExistingProfile(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.Save(ctx, domain.SaveInput{Name: "Acme Traders", StateCode: "21"})
	require.NoError(t, err)

	second, err := svc.Save(ctx, domain.SaveInput{Name: "Acme Traders Pvt Ltd", StateCode: "19"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "West Bengal", second.StateName)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Traders Pvt Ltd", got.Name)
}

func TestSaveRejectsBadInput(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Save(ctx, domain.SaveInput{StateCode: "21"})
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = svc.Save(ctx, domain.SaveInput{Name: "Acme", GSTIN: "not-a-gstin"})
	assert.ErrorIs(t, err, gst.ErrInvalidGSTIN)

	_, err = svc.Save(ctx, domain.SaveInput{Name: "Acme", StateCode: "99"})
	assert.ErrorIs(t, err, gst.ErrInvalidStateCode)
}

func TestGetWithoutProfile(t *testing.T) {
	svc := newService(t)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
