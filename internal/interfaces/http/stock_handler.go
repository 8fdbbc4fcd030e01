package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP de stock (protegido).
type StockHandler struct {
	coordinator *stock.Coordinator
}

// NewStockHandler construye el handler.
func NewStockHandler(coordinator *stock.Coordinator) *StockHandler {
	return &StockHandler{coordinator: coordinator}
}

// Validate consulta disponibilidad de un producto.
// POST /api/stock/validate {product_id, quantity}
func (h *StockHandler) Validate(c *fiber.Ctx) error {
	var in struct {
		ProductID string  `json:"product_id"`
		Quantity  float64 `json:"quantity"`
	}
	if err := c.BodyParser(&in); err != nil || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.coordinator.ValidateStock(c.Context(), in.ProductID, in.Quantity))
}

// Deduct aplica una salida de stock.
// POST /api/stock/deduct {product_id, quantity, reason, reference}
func (h *StockHandler) Deduct(c *fiber.Ctx) error {
	return h.mutate(c, dto.MovementTypeDeduction)
}

// Add aplica una entrada de stock.
// POST /api/stock/add {product_id, quantity, reason, reference}
func (h *StockHandler) Add(c *fiber.Ctx) error {
	return h.mutate(c, dto.MovementTypeAddition)
}

func (h *StockHandler) mutate(c *fiber.Ctx, movType string) error {
	var in dto.StockOperationInput
	if err := c.BodyParser(&in); err != nil || in.ProductID == "" || in.Quantity <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "product_id y quantity > 0 requeridos"})
	}

	var r dto.Result[dto.StockLevel]
	if movType == dto.MovementTypeDeduction {
		r = h.coordinator.DeductStock(c.Context(), in.ProductID, in.Quantity, in.Reason, in.Reference)
	} else {
		r = h.coordinator.AddStock(c.Context(), in.ProductID, in.Quantity, in.Reason, in.Reference)
	}
	if !r.OK {
		// Rechazo de negocio del backend: se entrega el mensaje tal cual.
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_REJECTED", Message: r.Message})
	}
	return c.JSON(r.Data)
}

// Bulk aplica un lote heterogéneo de operaciones de stock.
// POST /api/stock/bulk {operations: [{product_id, quantity, type, reason?, reference?}]}
//
// 200 con success=true si todas aplicaron; 207 con failed_count si el fallo
// fue parcial; 502 si el lote completo no se pudo aplicar.
func (h *StockHandler) Bulk(c *fiber.Ctx) error {
	var in struct {
		Operations []dto.StockOperationInput `json:"operations"`
	}
	if err := c.BodyParser(&in); err != nil || len(in.Operations) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "operations requerido"})
	}
	for _, op := range in.Operations {
		if op.Type != dto.MovementTypeAddition && op.Type != dto.MovementTypeDeduction {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser addition o deduction"})
		}
	}

	outcome := h.coordinator.BulkStockOperation(c.Context(), in.Operations)
	switch {
	case outcome.Success:
		return c.JSON(outcome)
	case outcome.FailedCount < len(in.Operations):
		return c.Status(fiber.StatusMultiStatus).JSON(outcome)
	default:
		return c.Status(fiber.StatusBadGateway).JSON(outcome)
	}
}

// Alerts devuelve la caché de alertas; con ?refresh=true fuerza un refresco.
// GET /api/stock/alerts
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	if c.QueryBool("refresh") {
		return c.JSON(h.coordinator.RefreshAlerts(c.Context()))
	}
	return c.JSON(h.coordinator.Alerts())
}

// Movements devuelve la caché de movimientos de la sesión.
// GET /api/stock/movements
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	return c.JSON(h.coordinator.Movements())
}

// CurrentStock lee el stock actual de un producto.
// GET /api/stock/:productId
func (h *StockHandler) CurrentStock(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productId requerido"})
	}
	qty := h.coordinator.GetCurrentStock(c.Context(), productID)
	return c.JSON(dto.StockLevel{ProductID: productID, Quantity: qty})
}
