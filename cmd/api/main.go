package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kitadi/kitadi-pos/internal/application/auth"
	"github.com/kitadi/kitadi-pos/internal/application/companies"
	"github.com/kitadi/kitadi-pos/internal/application/products"
	"github.com/kitadi/kitadi-pos/internal/application/receipts"
	"github.com/kitadi/kitadi-pos/internal/application/sales"
	infrapdf "github.com/kitadi/kitadi-pos/internal/infrastructure/pdf"
	"github.com/kitadi/kitadi-pos/internal/infrastructure/postgres"
	"github.com/kitadi/kitadi-pos/internal/infrastructure/sink"
	"github.com/kitadi/kitadi-pos/internal/infrastructure/thermal"
	httpRouter "github.com/kitadi/kitadi-pos/internal/interfaces/http"
	"github.com/kitadi/kitadi-pos/pkg/config"
	"github.com/kitadi/kitadi-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("a iniciar aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("ligação a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	profileRepo := postgres.NewReceiptProfileRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := companies.NewUseCase(companyRepo)
	productUC := products.NewUseCase(productRepo)
	saleUC := sales.NewUseCase(saleRepo)

	// Motor de recibos: renderer vectorial + térmico + destino de saída
	receiptSink := sink.New(cfg.Receipt, log)
	receiptUC := receipts.NewUseCase(
		saleRepo, profileRepo,
		infrapdf.NewGenerator(),
		thermal.NewRenderer(),
		receiptSink,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kitadi POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		CompanyUC: companyUC,
		ProductUC: productUC,
		SaleUC:    saleUC,
		ReceiptUC: receiptUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP terminado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de paragem recebido, a encerrar servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
