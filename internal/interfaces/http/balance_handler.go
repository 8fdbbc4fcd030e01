package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/application/balance"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
)

// BalanceHandler maneja las peticiones HTTP de saldos de clientes (protegido).
type BalanceHandler struct {
	coordinator *balance.Coordinator
}

// NewBalanceHandler construye el handler.
func NewBalanceHandler(coordinator *balance.Coordinator) *BalanceHandler {
	return &BalanceHandler{coordinator: coordinator}
}

// GetBalance devuelve el snapshot de saldo de un cliente.
// GET /api/customers/:id/balance
//
// 404 si el snapshot no está disponible (cliente inexistente o backend caído;
// la ruta de lectura no distingue, por contrato degrada).
func (h *BalanceHandler) GetBalance(c *fiber.Ctx) error {
	details := h.coordinator.GetCustomerBalance(c.Context(), c.Params("id"))
	if details == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "saldo no disponible"})
	}
	return c.JSON(details)
}

type manualPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Reference     string          `json:"reference"`
	Notes         string          `json:"notes"`
}

// RecordPayment registra un abono manual de un cliente.
// POST /api/customers/:id/payments
func (h *BalanceHandler) RecordPayment(c *fiber.Ctx) error {
	var in manualPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	tx, err := h.coordinator.RecordManualPayment(c.Context(), dto.ManualPaymentInput{
		CustomerID:    c.Params("id"),
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Reference:     in.Reference,
		Notes:         in.Notes,
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidInput, domain.ErrInvalidCustomer:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "PAYMENT_FAILED", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(tx)
}

// GetTransactions devuelve el historial paginado de un cliente.
// GET /api/customers/:id/transactions?limit=&offset=
func (h *BalanceHandler) GetTransactions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit/offset inválidos"})
	}
	page.DefaultPage()

	txs := h.coordinator.GetTransactionHistory(c.Context(), c.Params("id"), page)
	return c.JSON(fiber.Map{
		"transactions": txs,
		"page":         dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// SyncAll dispara el resync completo de saldos en el backend.
// POST /api/customers/balance/sync
func (h *BalanceHandler) SyncAll(c *fiber.Ctx) error {
	res, err := h.coordinator.SyncAllCustomerBalances(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "SYNC_FAILED", Message: err.Error()})
	}
	return c.JSON(res)
}
