package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/inventory"
	domaininv "github.com/jhoicas/finanzas-api/internal/domain/inventory"
)

// InventoryHandler expone la conciliación manual de stock (protegido).
type InventoryHandler struct {
	reconciler *inventory.ReconcileUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(reconciler *inventory.ReconcileUseCase) *InventoryHandler {
	return &InventoryHandler{reconciler: reconciler}
}

// Reconcile godoc
// @Summary      Conciliar stock con una lista de líneas
// @Description  Ajusta el stock línea por línea. Las líneas que fallan se omiten y se reportan;
// @Description  nunca se revierte lo ya aplicado. El stock no baja de 0.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  true  "direction (reduce|restore) y products"
// @Success      200   {object}  dto.ReconcileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/reconcile [post]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.ReconcileRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	dir := domaininv.Direction(in.Direction)
	if dir != domaininv.DirectionReduce && dir != domaininv.DirectionRestore {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "direction debe ser reduce o restore"})
	}
	report := h.reconciler.ReconcileStock(c.Context(), userID, in.Products.Lines(), dir)
	return c.JSON(inventory.ToReconcileResponse(report))
}
