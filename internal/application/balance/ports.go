package balance

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
)

// LedgerGateway puerto de salida hacia el backend de saldos de clientes.
// Mismo contrato de errores que el gateway de stock: error de Go solo para
// fallos de transporte; rechazos de negocio como Result con OK=false.
type LedgerGateway interface {
	GetCustomerBalance(ctx context.Context, customerID string) (dto.Result[dto.CustomerBalanceDetails], error)
	// UpdateBalanceForOrderStatusChange y UpdateBalanceForPaymentMethodChange
	// delegan el recálculo al backend. Data ausente con OK=true significa que
	// la transición no afectaba el saldo.
	UpdateBalanceForOrderStatusChange(ctx context.Context, in dto.BalanceOrderStatusInput) (dto.Result[dto.BalanceUpdate], error)
	UpdateBalanceForPaymentMethodChange(ctx context.Context, in dto.BalancePaymentMethodInput) (dto.Result[dto.BalanceUpdate], error)
	RecordManualPayment(ctx context.Context, in dto.ManualPaymentInput) (dto.Result[dto.BalanceTransaction], error)
	GetTransactionHistory(ctx context.Context, customerID string, page dto.PageRequest) (dto.Result[[]dto.BalanceTransaction], error)
	SyncAllBalances(ctx context.Context) (dto.Result[dto.BalanceSyncResult], error)
}
