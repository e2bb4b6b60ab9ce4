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

	"github.com/ccltech/tienda-api/internal/application/auth"
	"github.com/ccltech/tienda-api/internal/application/inventario"
	"github.com/ccltech/tienda-api/internal/application/pagos"
	"github.com/ccltech/tienda-api/internal/application/usecase"
	"github.com/ccltech/tienda-api/internal/infrastructure/cache"
	"github.com/ccltech/tienda-api/internal/infrastructure/mailer"
	"github.com/ccltech/tienda-api/internal/infrastructure/paypal"
	infrapdf "github.com/ccltech/tienda-api/internal/infrastructure/pdf"
	"github.com/ccltech/tienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/ccltech/tienda-api/internal/interfaces/http"
	"github.com/ccltech/tienda-api/pkg/config"
	"github.com/ccltech/tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productoRepo := postgres.NewProductoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	subcategoriaRepo := postgres.NewSubcategoriaRepository(pool)
	marcaRepo := postgres.NewMarcaRepository(pool)
	resenaRepo := postgres.NewResenaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	ordenRepo := postgres.NewOrdenRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	pagoTxRunner := postgres.NewPagoTxRunner(pool)

	// La caché de facetas es opcional: sin REDIS_ADDR las facetas se
	// calculan en cada petición.
	var facetCache usecase.FacetCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		facetCache = redisCache
	}

	productoUC := usecase.NewProductoUseCase(productoRepo, categoriaRepo, subcategoriaRepo, marcaRepo)
	facetasUC := usecase.NewFacetasUseCase(categoriaRepo, productoRepo, facetCache, log)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	subcategoriaUC := usecase.NewSubcategoriaUseCase(subcategoriaRepo, categoriaRepo)
	marcaUC := usecase.NewMarcaUseCase(marcaRepo)
	resenaUC := usecase.NewResenaUseCase(resenaRepo, productoRepo, usuarioRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, productoRepo)
	movimientoUC := inventario.NewMovimientoUseCase(txRunner, postgres.NewMovimientoRepository(pool))

	// El mailer solo se activa con SMTP configurado; sin él la confirmación
	// de pago funciona igual pero no envía correo.
	var confirmMailer pagos.Mailer
	if cfg.SMTP.Host != "" {
		confirmMailer = mailer.NewGomailSender(cfg.SMTP)
	}
	ordenUC := pagos.NewOrdenUseCase(
		pagoTxRunner, ordenRepo, productoRepo, usuarioRepo,
		paypal.NewClient(cfg.PayPal),
		confirmMailer,
		infrapdf.NewReciboMaroto(cfg.App.Name),
		log,
	)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductoUC:     productoUC,
		FacetasUC:      facetasUC,
		CategoriaUC:    categoriaUC,
		SubcategoriaUC: subcategoriaUC,
		MarcaUC:        marcaUC,
		ResenaUC:       resenaUC,
		UsuarioUC:      usuarioUC,
		MovimientoUC:   movimientoUC,
		OrdenUC:        ordenUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
