package ofertas

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/domain/repository"
	"github.com/ccltech/tienda-api/pkg/logger"
)

// Params umbrales del barrido de ofertas.
type Params struct {
	StockMinimo    int             // stock mínimo para ser elegible
	AntiguedadDias int             // días desde la creación para ser elegible
	Descuento      decimal.Decimal // porcentaje a aplicar
	DuracionDias   int             // vigencia de la oferta
}

// Reporte resultado de una pasada del barrido.
type Reporte struct {
	Expiradas int
	Marcadas  int
	Fallidas  int
}

// Sweep marca como oferta los productos activos con stock alto y antigüedad
// suficiente, y apaga las ofertas vencidas. Correr dos veces seguidas produce
// el mismo estado: los elegibles excluyen lo que ya está en oferta.
type Sweep struct {
	productoRepo repository.ProductoRepository
	params       Params
	log          *logger.Logger
}

// NewSweep construye el barrido.
func NewSweep(productoRepo repository.ProductoRepository, params Params, log *logger.Logger) *Sweep {
	return &Sweep{productoRepo: productoRepo, params: params, log: log}
}

// Ejecutar hace una pasada completa: expira ofertas vencidas y marca las
// nuevas. Los fallos por producto se acumulan y no abortan la pasada.
func (s *Sweep) Ejecutar(ctx context.Context) (*Reporte, error) {
	now := time.Now()
	reporte := &Reporte{}

	expiradas, err := s.productoRepo.ExpirarOfertas(ctx, now)
	if err != nil {
		return nil, err
	}
	reporte.Expiradas = expiradas

	antesDe := now.AddDate(0, 0, -s.params.AntiguedadDias)
	elegibles, err := s.productoRepo.ListarElegiblesOferta(ctx, s.params.StockMinimo, antesDe)
	if err != nil {
		return nil, err
	}
	fin := now.AddDate(0, 0, s.params.DuracionDias)
	for _, p := range elegibles {
		p.EnOferta = true
		p.Descuento = s.params.Descuento
		p.OfertaInicio = &now
		p.OfertaFin = &fin
		p.RecalcularPrecioOferta()
		p.UpdatedAt = now
		if err := s.productoRepo.Update(p); err != nil {
			reporte.Fallidas++
			s.log.Warn().Err(err).Str("producto", p.ID).Msg("no se pudo marcar la oferta")
			continue
		}
		reporte.Marcadas++
	}
	s.log.Info().
		Int("expiradas", reporte.Expiradas).
		Int("marcadas", reporte.Marcadas).
		Int("fallidas", reporte.Fallidas).
		Msg("barrido de ofertas completado")
	return reporte, nil
}

// Correr ejecuta el barrido cada intervalo hasta que el contexto se cancele.
// Hace una pasada inmediata al arrancar.
func (s *Sweep) Correr(ctx context.Context, intervalo time.Duration) {
	if _, err := s.Ejecutar(ctx); err != nil {
		s.log.Error().Err(err).Msg("barrido de ofertas falló")
	}
	ticker := time.NewTicker(intervalo)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Ejecutar(ctx); err != nil {
				s.log.Error().Err(err).Msg("barrido de ofertas falló")
			}
		}
	}
}
