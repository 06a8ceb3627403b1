package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/anilkedia87/gstbill/internal/clock"
	"github.com/anilkedia87/gstbill/internal/company"
	"github.com/anilkedia87/gstbill/internal/config"
	"github.com/anilkedia87/gstbill/internal/hsn"
	"github.com/anilkedia87/gstbill/internal/invoice"
	"github.com/anilkedia87/gstbill/internal/logger"
	"github.com/anilkedia87/gstbill/internal/metrics"
	"github.com/anilkedia87/gstbill/internal/migration"
	"github.com/anilkedia87/gstbill/internal/sequence"
	"github.com/anilkedia87/gstbill/internal/server"
	"github.com/anilkedia87/gstbill/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		metrics.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		hsn.Module,
		company.Module,
		sequence.Module,
		invoice.Module,

		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(func(s *server.Server) {
			s.RegisterRoutes()
		}),
		fx.Invoke(server.RunHTTP),
	)
	app.Run()
}

func RegisterSnowflake(cfg config.Config) *snowflake.Node {
	node, err := snowflake.NewNode(cfg.SnowflakeNode)
	if err != nil {
		panic(err)
	}
	return node
}
