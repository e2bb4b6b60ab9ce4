package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/application/ofertas"
	"github.com/ccltech/tienda-api/internal/infrastructure/postgres"
	"github.com/ccltech/tienda-api/pkg/config"
	"github.com/ccltech/tienda-api/pkg/logger"
)

// Barrido de ofertas automáticas: expira las vencidas y pone en oferta los
// productos con sobre-stock antiguos. Sin -intervalo corre una sola pasada
// (pensado para cron); con -intervalo queda residente.
func main() {
	intervalo := flag.Duration("intervalo", 0, "intervalo entre pasadas (ej: 6h); 0 ejecuta una sola vez")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	sweep := ofertas.NewSweep(postgres.NewProductoRepository(pool), ofertas.Params{
		StockMinimo:    cfg.Ofertas.StockMinimo,
		AntiguedadDias: cfg.Ofertas.AntiguedadDias,
		Descuento:      decimal.NewFromInt(int64(cfg.Ofertas.Descuento)),
		DuracionDias:   cfg.Ofertas.DuracionDias,
	}, log)

	if *intervalo <= 0 {
		reporte, err := sweep.Ejecutar(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("barrido de ofertas")
		}
		log.Info().
			Int("expiradas", reporte.Expiradas).
			Int("marcadas", reporte.Marcadas).
			Int("fallidas", reporte.Fallidas).
			Msg("barrido completado")
		return
	}

	log.Info().Dur("intervalo", *intervalo).Msg("barrido de ofertas en modo residente")
	sweep.Correr(ctx, *intervalo)
	log.Info().Msg("barrido detenido")
}
