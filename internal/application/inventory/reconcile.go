package inventory

import (
	"context"

	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	domaininv "github.com/jhoicas/finanzas-api/internal/domain/inventory"
	"github.com/jhoicas/finanzas-api/internal/domain/repository"
	"github.com/jhoicas/finanzas-api/pkg/logger"
)

// Motivos por los que una línea no se aplica.
const (
	ReasonMissingID      = "línea sin id de producto"
	ReasonNotFound       = "producto no encontrado"
	ReasonForeignProduct = "el producto pertenece a otro usuario"
	ReasonFetchFailed    = "no se pudo leer el producto"
	ReasonPersistFailed  = "no se pudo guardar el stock"
	ReasonCancelled      = "operación cancelada"
)

// NoticeMalformedLines mensaje para el usuario cuando la colección de líneas no se pudo leer.
const NoticeMalformedLines = "No se pudo actualizar el inventario: la lista de productos de la orden no es válida."

// StockChange cambio aplicado a un producto.
type StockChange struct {
	ProductID string
	Before    int64
	After     int64
}

// SkippedLine línea omitida. Index es la posición en la lista recibida.
type SkippedLine struct {
	Index     int
	ProductID string
	Reason    string
}

// Report resultado de una conciliación. Nunca se devuelve como error: cada
// línea se aplica o se omite por separado.
type Report struct {
	Direction domaininv.Direction
	Applied   []StockChange
	Skipped   []SkippedLine
	Notice    string
}

// ReconcileUseCase aplica los cambios de stock de una orden, línea por línea.
//
// No hay transacción entre líneas: si una falla, las anteriores quedan aplicadas
// y las siguientes se siguen intentando. Dos conciliaciones concurrentes sobre el
// mismo producto pueden perder una actualización (leer-modificar-escribir).
type ReconcileUseCase struct {
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(productRepo repository.ProductRepository, log *logger.Logger) *ReconcileUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &ReconcileUseCase{productRepo: productRepo, log: log.Component("inventory.reconcile")}
}

// ReconcileStock ajusta el stock de cada producto de lines en el sentido dir.
// lines nil indica una colección ausente o ilegible: se registra un aviso y no se toca nada.
// Cantidades ausentes o no positivas cuentan como 1.
func (uc *ReconcileUseCase) ReconcileStock(
	ctx context.Context,
	ownerID string,
	lines []entity.OrderLine,
	dir domaininv.Direction,
) *Report {
	report := &Report{
		Direction: dir,
		Applied:   []StockChange{},
		Skipped:   []SkippedLine{},
	}
	if lines == nil {
		report.Notice = NoticeMalformedLines
		uc.log.Warn().Str("owner_id", ownerID).Str("direction", string(dir)).Msg("líneas de orden ausentes o mal formadas; inventario sin cambios")
		return report
	}

	for i, line := range lines {
		productID := line.ResolvedProductID()
		skip := func(reason string, err error) {
			report.Skipped = append(report.Skipped, SkippedLine{Index: i, ProductID: productID, Reason: reason})
			ev := uc.log.Warn()
			if err != nil {
				ev = uc.log.Error().Err(err)
			}
			ev.Int("line", i).Str("product_id", productID).Str("direction", string(dir)).Msg(reason)
		}

		if err := ctx.Err(); err != nil {
			skip(ReasonCancelled, err)
			continue
		}
		if productID == "" {
			skip(ReasonMissingID, nil)
			continue
		}
		product, err := uc.productRepo.GetByID(ctx, productID)
		if err != nil {
			skip(ReasonFetchFailed, err)
			continue
		}
		if product == nil {
			skip(ReasonNotFound, nil)
			continue
		}
		if product.UserID != ownerID {
			skip(ReasonForeignProduct, nil)
			continue
		}

		qty := domaininv.NormalizeQuantity(line.Quantity)
		next := domaininv.AdjustStock(product.Stock, qty, dir)
		if err := uc.productRepo.UpdateStock(ctx, product.ID, next); err != nil {
			skip(ReasonPersistFailed, err)
			continue
		}
		report.Applied = append(report.Applied, StockChange{ProductID: product.ID, Before: product.Stock, After: next})
		uc.log.Debug().Str("product_id", product.ID).Int64("before", product.Stock).Int64("after", next).Str("direction", string(dir)).Msg("stock actualizado")
	}
	return report
}
