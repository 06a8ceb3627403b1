package company

import (
	"go.uber.org/fx"

	"github.com/anilkedia87/gstbill/internal/company/repository"
	"github.com/anilkedia87/gstbill/internal/company/service"
)

var Module = fx.Module("company",
	fx.Provide(
		repository.New,
		service.New,
	),
)
