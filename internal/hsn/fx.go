package hsn

import (
	"context"

	"go.uber.org/fx"

	"github.com/anilkedia87/gstbill/internal/hsn/domain"
	"github.com/anilkedia87/gstbill/internal/hsn/registry"
	"github.com/anilkedia87/gstbill/internal/hsn/repository"
	"github.com/anilkedia87/gstbill/internal/hsn/service"
)

var Module = fx.Module("hsn.service",
	fx.Provide(registry.New),
	fx.Provide(repository.NewRepository),
	fx.Provide(service.New),
	fx.Invoke(registerHydration),
)

func registerHydration(lc fx.Lifecycle, svc domain.Service) {
	impl, ok := svc.(*service.Service)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return impl.Hydrate(ctx)
		},
	})
}
