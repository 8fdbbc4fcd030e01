package stock

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
)

// LedgerGateway puerto de salida hacia el backend de stock e inventario.
//
// Contrato de errores: el error de Go solo señala fallos de transporte (red,
// payload malformado). Los rechazos de negocio llegan como Result con OK=false
// y el mensaje del backend; nunca como error.
type LedgerGateway interface {
	// ValidateStock consulta disponibilidad sin mutar nada.
	ValidateStock(ctx context.Context, productID string, quantity float64) (dto.Result[dto.StockValidationResult], error)
	// DeductStock y AddStock aplican una mutación individual.
	DeductStock(ctx context.Context, productID string, quantity float64, reason, reference string) (dto.Result[dto.StockLevel], error)
	AddStock(ctx context.Context, productID string, quantity float64, reason, reference string) (dto.Result[dto.StockLevel], error)
	// BulkApply aplica un lote heterogéneo como una unidad lógica; el backend
	// reporta sub-operaciones aplicadas y rechazadas.
	BulkApply(ctx context.Context, operations []dto.StockOperationInput) (dto.Result[dto.BulkApplyResult], error)
	// ApplyOrderStatusChange delega el ajuste de stock de una transición de
	// estado de pedido; el backend decide los deltas.
	ApplyOrderStatusChange(ctx context.Context, in dto.OrderStatusChangeInput) (dto.Result[dto.OrderStockResult], error)
	FetchAlerts(ctx context.Context) (dto.Result[[]dto.StockAlert], error)
	FetchMovements(ctx context.Context, limit int) (dto.Result[[]dto.StockMovement], error)
	GetCurrentStock(ctx context.Context, productID string) (dto.Result[dto.StockLevel], error)
	GetInventoryValuation(ctx context.Context) (dto.Result[dto.InventoryValuation], error)
	// GetInventory devuelve los registros crudos más el resumen precalculado
	// si el backend lo incluye.
	GetInventory(ctx context.Context) (dto.Result[dto.InventorySnapshot], error)
}
