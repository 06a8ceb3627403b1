// Package migration creates the schema on startup so the service is
// usable out of the box for local and self-hosted environments.
package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	companydomain "github.com/anilkedia87/gstbill/internal/company/domain"
	hsndomain "github.com/anilkedia87/gstbill/internal/hsn/domain"
	invoicedomain "github.com/anilkedia87/gstbill/internal/invoice/domain"
	"github.com/anilkedia87/gstbill/internal/sequence"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB) error {
		return conn.AutoMigrate(
			&companydomain.Profile{},
			&hsndomain.Record{},
			&invoicedomain.Record{},
			&sequence.Counter{},
		)
	}),
)
