package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	companydomain "github.com/anilkedia87/gstbill/internal/company/domain"
	"github.com/anilkedia87/gstbill/internal/config"
	hsndomain "github.com/anilkedia87/gstbill/internal/hsn/domain"
	invoicedomain "github.com/anilkedia87/gstbill/internal/invoice/domain"
)

func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	log        *zap.Logger
	invoiceSvc invoicedomain.Service
	hsnSvc     hsndomain.Service
	companySvc companydomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Log        *zap.Logger
	InvoiceSvc invoicedomain.Service
	HSNSvc     hsndomain.Service
	CompanySvc companydomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		log:        p.Log.Named("http.server"),
		invoiceSvc: p.InvoiceSvc,
		hsnSvc:     p.HSNSvc,
		companySvc: p.CompanySvc,
	}
}

func (s *Server) RegisterRoutes() {
	v1 := s.engine.Group("/v1")

	v1.POST("/invoices", s.CreateInvoice)
	v1.GET("/invoices", s.ListInvoices)
	v1.GET("/invoices/:number", s.GetInvoice)
	v1.GET("/invoices/:number/document", s.RenderInvoice)

	v1.GET("/gst/rates", s.ListGSTRates)

	v1.GET("/hsn", s.SearchHSNCodes)
	v1.GET("/hsn/suggest", s.SuggestHSNCodes)
	v1.GET("/hsn/:code", s.GetHSNCode)
	v1.POST("/hsn", s.RegisterHSNCode)

	v1.GET("/company", s.GetCompanyProfile)
	v1.PUT("/company", s.SaveCompanyProfile)
}

func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.log.Fatal("http server", zap.Error(err))
				}
			}()
			s.log.Info("http server started", zap.String("addr", s.cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
