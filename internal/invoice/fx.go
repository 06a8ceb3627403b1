package invoice

import (
	"go.uber.org/fx"

	hsndomain "github.com/anilkedia87/gstbill/internal/hsn/domain"
	"github.com/anilkedia87/gstbill/internal/invoice/repository"
	"github.com/anilkedia87/gstbill/internal/invoice/service"
	"github.com/anilkedia87/gstbill/internal/invoice/validate"
	"github.com/anilkedia87/gstbill/internal/providers/pdf"
)

var Module = fx.Module("invoice",
	fx.Provide(
		func(codes hsndomain.Service) *validate.Validator {
			return validate.New(codes)
		},
		pdf.New,
		repository.New,
		service.New,
	),
)
