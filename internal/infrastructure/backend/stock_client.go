package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
)

// Operaciones de stock e inventario (implementa stock.LedgerGateway y
// summary.InventoryReader).

type stockMutationRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Reason    string  `json:"reason,omitempty"`
	Reference string  `json:"reference,omitempty"`
}

func (c *Client) ValidateStock(ctx context.Context, productID string, quantity float64) (dto.Result[dto.StockValidationResult], error) {
	body := stockMutationRequest{ProductID: productID, Quantity: quantity}
	return call[dto.StockValidationResult](ctx, c, http.MethodPost, "/stock/validate", body, nil)
}

func (c *Client) DeductStock(ctx context.Context, productID string, quantity float64, reason, reference string) (dto.Result[dto.StockLevel], error) {
	body := stockMutationRequest{ProductID: productID, Quantity: quantity, Reason: reason, Reference: reference}
	return call[dto.StockLevel](ctx, c, http.MethodPost, "/stock/deduct", body, nil)
}

func (c *Client) AddStock(ctx context.Context, productID string, quantity float64, reason, reference string) (dto.Result[dto.StockLevel], error) {
	body := stockMutationRequest{ProductID: productID, Quantity: quantity, Reason: reason, Reference: reference}
	return call[dto.StockLevel](ctx, c, http.MethodPost, "/stock/add", body, nil)
}

func (c *Client) BulkApply(ctx context.Context, operations []dto.StockOperationInput) (dto.Result[dto.BulkApplyResult], error) {
	body := map[string]any{"operations": operations}
	return call[dto.BulkApplyResult](ctx, c, http.MethodPost, "/stock/bulk", body, nil)
}

func (c *Client) ApplyOrderStatusChange(ctx context.Context, in dto.OrderStatusChangeInput) (dto.Result[dto.OrderStockResult], error) {
	path := fmt.Sprintf("/orders/%s/stock-adjustment", in.OrderID)
	return call[dto.OrderStockResult](ctx, c, http.MethodPost, path, in, nil)
}

func (c *Client) FetchAlerts(ctx context.Context) (dto.Result[[]dto.StockAlert], error) {
	return call[[]dto.StockAlert](ctx, c, http.MethodGet, "/stock/alerts", nil, nil)
}

func (c *Client) FetchMovements(ctx context.Context, limit int) (dto.Result[[]dto.StockMovement], error) {
	query := map[string]string{"limit": strconv.Itoa(limit)}
	return call[[]dto.StockMovement](ctx, c, http.MethodGet, "/stock/movements", nil, query)
}

func (c *Client) GetCurrentStock(ctx context.Context, productID string) (dto.Result[dto.StockLevel], error) {
	return call[dto.StockLevel](ctx, c, http.MethodGet, "/stock/"+productID, nil, nil)
}

func (c *Client) GetInventoryValuation(ctx context.Context) (dto.Result[dto.InventoryValuation], error) {
	return call[dto.InventoryValuation](ctx, c, http.MethodGet, "/inventory/valuation", nil, nil)
}

func (c *Client) GetInventory(ctx context.Context) (dto.Result[dto.InventorySnapshot], error) {
	return call[dto.InventorySnapshot](ctx, c, http.MethodGet, "/inventory", nil, nil)
}
