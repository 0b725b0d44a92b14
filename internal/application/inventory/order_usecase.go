package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/domain"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	domaininv "github.com/jhoicas/finanzas-api/internal/domain/inventory"
	"github.com/jhoicas/finanzas-api/internal/domain/invoice"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/money"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// OrderUseCase órdenes del punto de venta y su efecto en inventario.
//
// Colocar o cancelar la misma orden dos veces seguidas (doble clic, reintento del
// cliente) se colapsa con singleflight. El cambio de estado es condicional
// (UpdateStatus con el estado leído), así que un place y un cancel simultáneos,
// o dos instancias del servicio, no concilian el stock dos veces: el perdedor
// recibe ErrConflict.
type OrderUseCase struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	reconciler   *ReconcileUseCase
	formatter    *money.Formatter
	flight       singleflight.Group
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	reconciler *ReconcileUseCase,
	formatter *money.Formatter,
) *OrderUseCase {
	if formatter == nil {
		formatter = money.Default
	}
	return &OrderUseCase{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		reconciler:   reconciler,
		formatter:    formatter,
	}
}

// Create registra una orden pendiente. El total se calcula con el precio actual
// de cada producto; el stock no cambia hasta colocarla.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	lines := in.Products.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("order: obtener cliente: %w", err)
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		if customer.UserID != userID {
			return nil, domain.ErrForbidden
		}
	}

	total := decimal.Zero
	normalized := make([]entity.OrderLine, 0, len(lines))
	for _, l := range lines {
		productID := l.ResolvedProductID()
		if productID == "" {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("order: obtener producto: %w", err)
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if product.UserID != userID {
			return nil, domain.ErrForbidden
		}
		qty := domaininv.NormalizeQuantity(l.Quantity)
		total = total.Add(invoice.LineTotal(qty, product.Price))
		normalized = append(normalized, entity.OrderLine{ProductID: productID, Quantity: qty})
	}

	now := time.Now()
	order := &entity.Order{
		ID:            uuid.New().String(),
		UserID:        userID,
		CustomerID:    in.CustomerID,
		Products:      normalized,
		Total:         total,
		Status:        entity.OrderStatusPending,
		PaymentMethod: strings.TrimSpace(in.PaymentMethod),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	res := uc.toResponse(order)
	return &res, nil
}

// Get devuelve una orden del usuario.
func (uc *OrderUseCase) Get(ctx context.Context, userID, orderID string) (*dto.OrderResponse, error) {
	order, err := uc.load(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	res := uc.toResponse(order)
	return &res, nil
}

// List lista órdenes del usuario, más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, userID string, limit, offset int) ([]dto.OrderResponse, error) {
	page := dto.PageRequest{Limit: limit, Offset: offset}
	page.DefaultPage()
	list, err := uc.orderRepo.ListByOwner(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, uc.toResponse(o))
	}
	return out, nil
}

// Place completa una orden pendiente y descuenta su stock.
func (uc *OrderUseCase) Place(ctx context.Context, userID, orderID string) (*dto.OrderTransitionResponse, error) {
	return uc.transition(ctx, "place", userID, orderID, func() (*dto.OrderTransitionResponse, error) {
		order, err := uc.load(ctx, userID, orderID)
		if err != nil {
			return nil, err
		}
		if order.Status != entity.OrderStatusPending {
			return nil, fmt.Errorf("%w: la orden está %s", domain.ErrConflict, order.Status)
		}
		return uc.apply(ctx, order, entity.OrderStatusCompleted, domaininv.DirectionReduce)
	})
}

// Cancel cancela una orden. Si ya estaba completada devuelve el stock; si estaba
// pendiente solo cambia el estado.
func (uc *OrderUseCase) Cancel(ctx context.Context, userID, orderID string) (*dto.OrderTransitionResponse, error) {
	return uc.transition(ctx, "cancel", userID, orderID, func() (*dto.OrderTransitionResponse, error) {
		order, err := uc.load(ctx, userID, orderID)
		if err != nil {
			return nil, err
		}
		switch order.Status {
		case entity.OrderStatusCompleted:
			return uc.apply(ctx, order, entity.OrderStatusCancelled, domaininv.DirectionRestore)
		case entity.OrderStatusPending:
			return uc.apply(ctx, order, entity.OrderStatusCancelled, "")
		default:
			return nil, fmt.Errorf("%w: la orden está %s", domain.ErrConflict, order.Status)
		}
	})
}

// transition agrupa intentos simultáneos del mismo usuario sobre la misma orden.
// El usuario forma parte de la clave: otro usuario nunca recibe el resultado ajeno.
func (uc *OrderUseCase) transition(ctx context.Context, op, userID, orderID string, fn func() (*dto.OrderTransitionResponse, error)) (*dto.OrderTransitionResponse, error) {
	key := op + ":" + userID + ":" + orderID
	v, err, _ := uc.flight.Do(key, func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return nil, err
	}
	return v.(*dto.OrderTransitionResponse), nil
}

// apply guarda el nuevo estado y luego concilia. Si el estado no se puede
// guardar, el stock no se toca. dir vacío omite la conciliación.
//
// Con el estado ya guardado, la conciliación no se corta si la petición se
// cancela: un reintento sería rechazado con ErrConflict.
func (uc *OrderUseCase) apply(ctx context.Context, order *entity.Order, status string, dir domaininv.Direction) (*dto.OrderTransitionResponse, error) {
	now := time.Now()
	if err := uc.orderRepo.UpdateStatus(ctx, order.ID, order.Status, status, now); err != nil {
		return nil, fmt.Errorf("order: actualizar estado: %w", err)
	}
	order.Status = status
	order.UpdatedAt = now

	out := &dto.OrderTransitionResponse{
		Order:     uc.toResponse(order),
		Reconcile: dto.ReconcileResponse{Applied: []dto.StockChangeResponse{}, Skipped: []dto.SkippedLineResponse{}},
	}
	if dir != "" {
		out.Reconcile = ToReconcileResponse(uc.reconciler.ReconcileStock(context.WithoutCancel(ctx), order.UserID, order.Products, dir))
	}
	return out, nil
}

func (uc *OrderUseCase) load(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("order: obtener orden: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (uc *OrderUseCase) toResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Products:      o.Products,
		Total:         o.Total,
		TotalDisplay:  uc.formatter.FormatCurrency(o.Total, uc.formatter.Home),
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ToReconcileResponse adapta el reporte a la respuesta HTTP.
func ToReconcileResponse(r *Report) dto.ReconcileResponse {
	out := dto.ReconcileResponse{
		Applied: make([]dto.StockChangeResponse, 0, len(r.Applied)),
		Skipped: make([]dto.SkippedLineResponse, 0, len(r.Skipped)),
		Notice:  r.Notice,
	}
	for _, a := range r.Applied {
		out.Applied = append(out.Applied, dto.StockChangeResponse{ProductID: a.ProductID, Before: a.Before, After: a.After})
	}
	for _, s := range r.Skipped {
		out.Skipped = append(out.Skipped, dto.SkippedLineResponse{ProductID: s.ProductID, Reason: s.Reason})
	}
	return out
}
