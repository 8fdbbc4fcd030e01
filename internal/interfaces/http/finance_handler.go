package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/finance"
	"github.com/tu-usuario/gestion-pro/internal/domain"
)

// FinanceHandler maneja gastos y settings del negocio (protegido).
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// CreateExpense registra un gasto.
// POST /api/finance/expenses {category, description, amount, date, reference, payment_method, receipt_url}
func (h *FinanceHandler) CreateExpense(c *fiber.Ctx) error {
	var in dto.ExpenseInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	if err := h.uc.RegisterExpense(c.Context(), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "category, amount > 0 y date YYYY-MM-DD requeridos"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EXPENSE_FAILED", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "gasto registrado"})
}

// GetSettings devuelve el blob de configuración del negocio.
// GET /api/settings
func (h *FinanceHandler) GetSettings(c *fiber.Ctx) error {
	s := h.uc.GetSettings(c.Context())
	if s == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "settings no disponibles"})
	}
	return c.JSON(s)
}

// UpdateSettings guarda el blob de configuración.
// PUT /api/settings
func (h *FinanceHandler) UpdateSettings(c *fiber.Ctx) error {
	var s dto.Settings
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SaveSettings(c.Context(), s); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "settings vacíos"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SETTINGS_FAILED", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "settings guardados"})
}
