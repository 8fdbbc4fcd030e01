package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/balance"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/stock"
)

// OrderHandler orquesta las transiciones de estado de pedido: primero el
// ajuste de stock, luego el recálculo de saldo del cliente. Los dos dominios
// conservan su contrato de error propio (stock responde con veredicto,
// saldo propaga).
type OrderHandler struct {
	stockCoord   *stock.Coordinator
	balanceCoord *balance.Coordinator
}

// NewOrderHandler construye el handler.
func NewOrderHandler(stockCoord *stock.Coordinator, balanceCoord *balance.Coordinator) *OrderHandler {
	return &OrderHandler{stockCoord: stockCoord, balanceCoord: balanceCoord}
}

type orderStatusChangeRequest struct {
	OrderNumber string          `json:"order_number"`
	CustomerID  string          `json:"customer_id"`
	Items       []dto.OrderItem `json:"items"`
	NewStatus   string          `json:"new_status"`
	OldStatus   string          `json:"old_status"`
}

// ChangeStatus aplica una transición de estado de pedido.
// POST /api/orders/:id/status
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var in orderStatusChangeRequest
	if err := c.BodyParser(&in); err != nil || in.NewStatus == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "new_status requerido"})
	}

	stockResult := h.stockCoord.HandleOrderStatusChange(c.Context(), dto.OrderStatusChangeInput{
		OrderID:     orderID,
		OrderNumber: in.OrderNumber,
		Items:       in.Items,
		NewStatus:   in.NewStatus,
		OldStatus:   in.OldStatus,
	})
	if !stockResult.OK {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_REJECTED", Message: stockResult.Message})
	}

	// El saldo solo aplica a pedidos con cliente asociado.
	var balanceUpdate *dto.BalanceUpdate
	if in.CustomerID != "" {
		var err error
		balanceUpdate, err = h.balanceCoord.UpdateBalanceForOrderStatusChange(c.Context(), dto.BalanceOrderStatusInput{
			CustomerID:  in.CustomerID,
			OrderID:     orderID,
			OrderNumber: in.OrderNumber,
			NewStatus:   in.NewStatus,
			OldStatus:   in.OldStatus,
		})
		if err != nil {
			// El stock ya se ajustó; el fallo del saldo se reporta sin
			// deshacer nada (el backend es el punto de serialización).
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BALANCE_FAILED", Message: err.Error()})
		}
	}

	return c.JSON(fiber.Map{
		"stock":   stockResult.Data,
		"balance": balanceUpdate,
	})
}

// ChangePaymentMethod recalcula el saldo por cambio de método de pago.
// POST /api/orders/:id/payment-method
func (h *OrderHandler) ChangePaymentMethod(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var in dto.BalancePaymentMethodInput
	if err := c.BodyParser(&in); err != nil || in.CustomerID == "" || in.NewMethod == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "customer_id y new_method requeridos"})
	}
	in.OrderID = orderID

	update, err := h.balanceCoord.UpdateBalanceForPaymentMethodChange(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BALANCE_FAILED", Message: err.Error()})
	}
	if update == nil {
		return c.SendStatus(fiber.StatusNoContent) // el cambio no afectaba el saldo
	}
	return c.JSON(update)
}
