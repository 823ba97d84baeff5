package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"fundamentals/controllers"
	"fundamentals/core"
	"fundamentals/fetcher"
	"fundamentals/internal/fmp"
	"fundamentals/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := core.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := core.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	provider, err := fmp.NewClient(cfg.FMPAPIKey,
		fmp.WithBaseURL(cfg.FMPBaseURL),
		fmp.WithTimeout(cfg.FMPTimeout),
		fmp.WithLogger(core.Component(logger, "fmp")),
	)
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := ""
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if command == "symbols" {
		for _, symbol := range provider.FetchAllSymbols(ctx) {
			fmt.Println(symbol)
		}
		return
	}

	// connect to the database
	db, err := core.InitDB(cfg)
	if err != nil {
		panic(err)
	}

	// auto migrate the database
	if err := core.Migrate(db); err != nil {
		panic(err)
	}

	income := models.NewRepository[models.IncomeStatement](db, logger)
	balanceSheet := models.NewRepository[models.BalanceSheetStatement](db, logger)
	cashFlow := models.NewRepository[models.CashFlowStatement](db, logger)

	switch command {
	case "sync":
		period, ok := models.ParsePeriod(cfg.SyncPeriod)
		if !ok {
			logger.Fatalf("Invalid SYNC_PERIOD %q", cfg.SyncPeriod)
		}

		f := fetcher.NewStatementFetcher(db, provider,
			[]fetcher.Target{
				fetcher.Into(models.IncomeStatementType, income),
				fetcher.Into(models.BalanceSheetStatementType, balanceSheet),
				fetcher.Into(models.CashFlowStatementType, cashFlow),
			},
			fetcher.Options{
				Symbols:    cfg.SyncSymbols,
				AllSymbols: cfg.SyncAllSymbols,
				Period:     period,
				Delay:      cfg.SyncDelay,
			},
			core.Component(logger, "fetcher"),
		)

		if _, err := f.Run(ctx); err != nil {
			logger.Errorw("Statement sync stopped", "error", err)
		}
		return
	default:
		engine := createServer(cfg, db, provider, logger,
			controllers.NewStatementsController(income, balanceSheet, cashFlow, logger.With("controller", "statements")))

		if err := engine.Run(":" + cfg.Port); err != nil {
			logger.Errorw("Server stopped", "error", err)
		}
	}
}

func createServer(cfg *core.Config, db *gorm.DB, provider *fmp.Client, logger *zap.SugaredLogger, statements *controllers.StatementsController) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	err := engine.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	engine.Use(
		gin.Recovery(),
		controllers.RequestID,
		controllers.AccessLog(core.Component(logger, "http")),
		cors.New(corsConfig(cfg)),
	)

	router := controllers.Router{
		HealthController: &controllers.HealthController{
			DB:     db,
			Logger: logger.With("controller", "health"),
		},
		StatementsController: statements,
		ProviderController: &controllers.ProviderController{
			Provider: provider,
			Logger:   logger.With("controller", "provider"),
		},
	}

	router.RegisterRoutes(engine)
	return engine
}

func corsConfig(cfg *core.Config) cors.Config {
	corsConfig := cors.DefaultConfig()

	var origins []string
	for _, origin := range cfg.CORSAllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	// Production without an allowlist allows no cross-origin callers.
	switch {
	case len(origins) > 0:
		corsConfig.AllowOrigins = origins
	case cfg.IsProduction():
		corsConfig.AllowOrigins = []string{}
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	default:
		corsConfig.AllowAllOrigins = true
	}

	corsConfig.AddAllowHeaders("X-Request-ID")
	corsConfig.AddExposeHeaders("X-Request-ID", "Content-Length")

	return corsConfig
}
