package pagos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ccltech/tienda-api/internal/application/dto"
	"github.com/ccltech/tienda-api/internal/domain"
	"github.com/ccltech/tienda-api/internal/domain/entity"
	"github.com/ccltech/tienda-api/internal/domain/repository"
	"github.com/ccltech/tienda-api/pkg/logger"
)

// OrdenUseCase crea órdenes y confirma sus pagos contra PayPal.
type OrdenUseCase struct {
	txRunner     TxRunner
	ordenRepo    repository.OrdenRepository
	productoRepo repository.ProductoRepository
	usuarioRepo  repository.UsuarioRepository
	gateway      PayPalGateway
	mailer       Mailer
	recibo       GeneradorRecibo
	log          *logger.Logger
}

// NewOrdenUseCase construye el caso de uso. mailer y recibo pueden ser nil
// (la confirmación sigue funcionando, solo no envía correo).
func NewOrdenUseCase(
	txRunner TxRunner,
	ordenRepo repository.OrdenRepository,
	productoRepo repository.ProductoRepository,
	usuarioRepo repository.UsuarioRepository,
	gateway PayPalGateway,
	mailer Mailer,
	recibo GeneradorRecibo,
	log *logger.Logger,
) *OrdenUseCase {
	return &OrdenUseCase{
		txRunner:     txRunner,
		ordenRepo:    ordenRepo,
		productoRepo: productoRepo,
		usuarioRepo:  usuarioRepo,
		gateway:      gateway,
		mailer:       mailer,
		recibo:       recibo,
		log:          log,
	}
}

// Crear valida usuario, productos y stock disponible, fija el precio unitario
// vigente (con oferta si aplica) y crea la orden en estado pendiente. El total
// se calcula en el servidor, el del cliente solo se acepta si coincide.
func (uc *OrdenUseCase) Crear(ctx context.Context, in dto.CreateOrdenRequest) (*dto.OrdenResponse, error) {
	if len(in.Products) == 0 {
		return nil, domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.GetByID(in.UsuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}

	items := make([]entity.OrdenItem, 0, len(in.Products))
	total := decimal.Zero
	for _, p := range in.Products {
		if p.Cantidad <= 0 {
			return nil, domain.ErrInvalidInput
		}
		producto, err := uc.productoRepo.GetByID(p.ProductoID)
		if err != nil {
			return nil, err
		}
		if producto == nil || producto.State != entity.EstadoActivo {
			return nil, domain.ErrNotFound
		}
		if producto.Stock < p.Cantidad {
			return nil, domain.ErrInsufficientStock
		}
		precio := producto.PrecioOferta
		items = append(items, entity.OrdenItem{
			ProductoID: p.ProductoID,
			Cantidad:   p.Cantidad,
			Precio:     precio,
		})
		total = total.Add(precio.Mul(decimal.NewFromInt(int64(p.Cantidad))))
	}
	if !in.Total.IsZero() && !in.Total.Equal(total) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	orden := &entity.Orden{
		ID:        uuid.New().String(),
		UsuarioID: in.UsuarioID,
		Items:     items,
		Total:     total,
		Status:    entity.OrdenPendiente,
		Envio: entity.InfoEnvio{
			FirstName:  in.Envio.FirstName,
			LastName:   in.Envio.LastName,
			Phone:      in.Envio.Phone,
			Address:    in.Envio.Address,
			City:       in.Envio.City,
			State:      in.Envio.State,
			Country:    in.Envio.Country,
			PostalCode: in.Envio.PostalCode,
			Notes:      in.Envio.Notes,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.ordenRepo.Create(orden); err != nil {
		return nil, err
	}
	return toOrdenResponse(orden), nil
}

// GetByID obtiene una orden por ID.
func (uc *OrdenUseCase) GetByID(id string) (*dto.OrdenResponse, error) {
	orden, err := uc.ordenRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	return toOrdenResponse(orden), nil
}

// ListByUsuario lista las órdenes de un usuario.
func (uc *OrdenUseCase) ListByUsuario(usuarioID string) ([]dto.OrdenResponse, error) {
	ordenes, err := uc.ordenRepo.ListByUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrdenResponse, 0, len(ordenes))
	for _, o := range ordenes {
		items = append(items, *toOrdenResponse(o))
	}
	return items, nil
}

// List lista todas las órdenes (uso administrativo).
func (uc *OrdenUseCase) List() ([]dto.OrdenResponse, error) {
	ordenes, err := uc.ordenRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrdenResponse, 0, len(ordenes))
	for _, o := range ordenes {
		items = append(items, *toOrdenResponse(o))
	}
	return items, nil
}

func toOrdenResponse(o *entity.Orden) *dto.OrdenResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrdenItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrdenItemResponse{
			ProductoID: it.ProductoID,
			Cantidad:   it.Cantidad,
			Precio:     it.Precio,
		})
	}
	return &dto.OrdenResponse{
		ID:        o.ID,
		UsuarioID: o.UsuarioID,
		Products:  items,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}
