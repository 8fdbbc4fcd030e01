package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
)

// Operaciones de saldos de clientes (implementa balance.LedgerGateway).

func (c *Client) GetCustomerBalance(ctx context.Context, customerID string) (dto.Result[dto.CustomerBalanceDetails], error) {
	path := fmt.Sprintf("/customers/%s/balance", customerID)
	return call[dto.CustomerBalanceDetails](ctx, c, http.MethodGet, path, nil, nil)
}

func (c *Client) UpdateBalanceForOrderStatusChange(ctx context.Context, in dto.BalanceOrderStatusInput) (dto.Result[dto.BalanceUpdate], error) {
	return call[dto.BalanceUpdate](ctx, c, http.MethodPost, "/customers/balance/order-status", in, nil)
}

func (c *Client) UpdateBalanceForPaymentMethodChange(ctx context.Context, in dto.BalancePaymentMethodInput) (dto.Result[dto.BalanceUpdate], error) {
	return call[dto.BalanceUpdate](ctx, c, http.MethodPost, "/customers/balance/payment-method", in, nil)
}

func (c *Client) RecordManualPayment(ctx context.Context, in dto.ManualPaymentInput) (dto.Result[dto.BalanceTransaction], error) {
	path := fmt.Sprintf("/customers/%s/payments", in.CustomerID)
	return call[dto.BalanceTransaction](ctx, c, http.MethodPost, path, in, nil)
}

func (c *Client) GetTransactionHistory(ctx context.Context, customerID string, page dto.PageRequest) (dto.Result[[]dto.BalanceTransaction], error) {
	path := fmt.Sprintf("/customers/%s/transactions", customerID)
	query := map[string]string{
		"limit":  strconv.Itoa(page.Limit),
		"offset": strconv.Itoa(page.Offset),
	}
	return call[[]dto.BalanceTransaction](ctx, c, http.MethodGet, path, nil, query)
}

func (c *Client) SyncAllBalances(ctx context.Context) (dto.Result[dto.BalanceSyncResult], error) {
	return call[dto.BalanceSyncResult](ctx, c, http.MethodPost, "/customers/balance/sync", nil, nil)
}
