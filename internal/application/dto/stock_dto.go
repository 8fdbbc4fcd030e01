package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severidades de alerta de stock.
const (
	AlertSeverityLow      = "low"      // bajo el mínimo, pero > 0
	AlertSeverityCritical = "critical" // agotado
)

// Tipos de movimiento de stock.
const (
	MovementTypeAddition  = "addition"
	MovementTypeDeduction = "deduction"
)

// StockAlert alerta generada por el backend para un producto bajo el mínimo.
// El coordinador reemplaza el set completo en cada refresco; no hay merge
// incremental ni identidad persistente más allá del ProductID.
type StockAlert struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	CurrentStock float64 `json:"current_stock"`
	MinStock     float64 `json:"min_stock"`
	Severity     string  `json:"severity"` // low | critical
}

// StockMovement entrada del log de movimientos (entrada o salida).
// Solo vive en memoria durante la sesión; la caché local está acotada.
type StockMovement struct {
	ProductID string    `json:"product_id"`
	Quantity  float64   `json:"quantity"`
	Type      string    `json:"type"` // addition | deduction
	Reason    string    `json:"reason"`
	Reference string    `json:"reference"` // pedido, factura, nota de ajuste
	CreatedAt time.Time `json:"created_at"`
}

// StockValidationResult resultado de validar disponibilidad. Valor calculado,
// nunca persistido.
type StockValidationResult struct {
	IsValid           bool    `json:"is_valid"`
	AvailableStock    float64 `json:"available_stock"`
	RequestedQuantity float64 `json:"requested_quantity"`
	Message           string  `json:"message"`
}

// StockLevel nivel de stock de un producto después de una mutación o consulta.
type StockLevel struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// StockOperationInput sub-operación de un lote heterogéneo de mutaciones.
type StockOperationInput struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Type      string  `json:"type"` // addition | deduction
	Reason    string  `json:"reason,omitempty"`
	Reference string  `json:"reference,omitempty"`
}

// BulkItemFailure detalle de una sub-operación rechazada dentro de un lote.
type BulkItemFailure struct {
	ProductID string `json:"product_id"`
	Message   string `json:"message"`
}

// BulkApplyResult respuesta del backend a un lote: cuántas sub-operaciones
// aplicó y cuáles rechazó.
type BulkApplyResult struct {
	Applied  int               `json:"applied"`
	Failures []BulkItemFailure `json:"failures"`
}

// BulkOperationOutcome veredicto del coordinador sobre un lote.
// Success solo si todas las sub-operaciones aplicaron; el fallo parcial se
// distingue del total mediante FailedCount.
type BulkOperationOutcome struct {
	Success     bool   `json:"success"`
	FailedCount int    `json:"failed_count"`
	Message     string `json:"message,omitempty"`
}

// OrderItem línea de pedido relevante para el ajuste de stock.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

// OrderStatusChangeInput parámetros del ajuste de stock por transición de
// estado de pedido. El backend decide cómo mapea la transición a deltas.
type OrderStatusChangeInput struct {
	OrderID     string      `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	Items       []OrderItem `json:"items"`
	NewStatus   string      `json:"new_status"`
	OldStatus   string      `json:"old_status"`
}

// OrderStockResult resultado del ajuste de stock de un pedido.
type OrderStockResult struct {
	AdjustedItems int `json:"adjusted_items"`
}

// InventoryValuation valoración del inventario completo. La fórmula vive en el
// backend; el agregador de resúmenes delega aquí para que exista una sola.
type InventoryValuation struct {
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalProducts int             `json:"total_products"`
}

// InventoryRecord registro crudo de inventario tal como lo entrega el backend.
// LegacyStock conserva el campo "stock" de esquemas anteriores del backend;
// el fallback current_stock -> stock -> 0 debe preservarse tal cual.
type InventoryRecord struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	CurrentStock *float64        `json:"current_stock"`
	LegacyStock  *float64        `json:"stock"`
	MinStock     float64         `json:"min_stock"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
}

// EffectiveStock aplica la cadena de fallback de esquema: current_stock,
// luego el campo legado stock, y 0 si ambos faltan.
func (r InventoryRecord) EffectiveStock() float64 {
	if r.CurrentStock != nil {
		return *r.CurrentStock
	}
	if r.LegacyStock != nil {
		return *r.LegacyStock
	}
	return 0
}

// InventorySummary agregado derivado; se reemplaza completo en cada cálculo,
// nunca se actualiza parcialmente.
type InventorySummary struct {
	TotalProducts   int             `json:"total_products"`
	TotalValue      decimal.Decimal `json:"total_value"`
	LowStockItems   int             `json:"low_stock_items"`
	OutOfStockItems int             `json:"out_of_stock_items"`
}

// InventorySnapshot respuesta de GET /inventory: registros crudos más, si el
// backend lo incluye, el resumen precalculado (autoritativo cuando presente).
type InventorySnapshot struct {
	Records []InventoryRecord `json:"records"`
	Summary *InventorySummary `json:"summary,omitempty"`
}
