package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/finanzas-api/internal/application/dto"
	"github.com/jhoicas/finanzas-api/internal/application/usecase"
)

// FinanceHandler transacciones, presupuestos y metas de ahorro (protegido).
type FinanceHandler struct {
	transactions *usecase.TransactionUseCase
	budgets      *usecase.BudgetUseCase
	goals        *usecase.GoalUseCase
	now          func() time.Time
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(tx *usecase.TransactionUseCase, budgets *usecase.BudgetUseCase, goals *usecase.GoalUseCase) *FinanceHandler {
	return &FinanceHandler{transactions: tx, budgets: budgets, goals: goals, now: time.Now}
}

// CreateTransaction godoc
// @Summary      Registrar ingreso o gasto
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "type (income|expense), category, amount, date"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *FinanceHandler) CreateTransaction(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.transactions.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err, "transacción no encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListTransactions godoc
// @Summary      Listar transacciones por rango de fechas
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD. Default: primer día del mes."
// @Param        to    query  string  false  "YYYY-MM-DD. Default: fin de mes."
// @Success      200   {array}   dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	from, to, err := usecase.ParseRange(c.Query("from"), c.Query("to"), h.now())
	if err != nil {
		return respondError(c, err, "")
	}
	out, err := h.transactions.List(c.Context(), userID, from, to)
	if err != nil {
		return respondError(c, err, "transacción no encontrada")
	}
	return c.JSON(out)
}

// CreateBudget godoc
// @Summary      Crear presupuesto por categoría
// @Tags         budgets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBudgetRequest  true  "category, limit, start_date, end_date"
// @Success      201   {object}  dto.BudgetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/budgets [post]
func (h *FinanceHandler) CreateBudget(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateBudgetRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.budgets.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err, "presupuesto no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBudgets godoc
// @Summary      Listar presupuestos con su consumo
// @Tags         budgets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.BudgetResponse
// @Router       /api/budgets [get]
func (h *FinanceHandler) ListBudgets(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	out, err := h.budgets.List(c.Context(), userID)
	if err != nil {
		return respondError(c, err, "presupuesto no encontrado")
	}
	return c.JSON(out)
}

// CreateGoal godoc
// @Summary      Crear meta de ahorro
// @Tags         goals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGoalRequest  true  "name, target, saved, deadline"
// @Success      201   {object}  dto.GoalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/goals [post]
func (h *FinanceHandler) CreateGoal(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.CreateGoalRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.goals.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, err, "meta no encontrada")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListGoals godoc
// @Summary      Listar metas con su avance
// @Tags         goals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.GoalResponse
// @Router       /api/goals [get]
func (h *FinanceHandler) ListGoals(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	out, err := h.goals.List(c.Context(), userID)
	if err != nil {
		return respondError(c, err, "meta no encontrada")
	}
	return c.JSON(out)
}

// Contribute godoc
// @Summary      Aportar a una meta
// @Tags         goals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la meta"
// @Param        body  body  dto.ContributeGoalRequest  true  "amount"
// @Success      200   {object}  dto.GoalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/goals/{id}/contributions [post]
func (h *FinanceHandler) Contribute(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return unauthorized(c)
	}
	var in dto.ContributeGoalRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.goals.Contribute(c.Context(), userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, err, "meta no encontrada")
	}
	return c.JSON(out)
}
