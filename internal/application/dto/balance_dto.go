package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerBalanceDetails snapshot del libro mayor de un cliente. El backend es
// el dueño de estos campos; aquí solo se relaya el último fetch.
type CustomerBalanceDetails struct {
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	Balance         decimal.Decimal `json:"balance"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BalanceTransaction entrada del historial de transacciones de un cliente.
type BalanceTransaction struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	Type          string          `json:"type"` // charge | payment | adjustment
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BalanceUpdate resultado de una actualización de saldo disparada por una
// transición de estado o de método de pago. Data ausente en la respuesta del
// backend significa que la transición no afectaba el saldo (no-op).
type BalanceUpdate struct {
	CustomerID      string          `json:"customer_id"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	Reason          string          `json:"reason,omitempty"`
}

// BalanceOrderStatusInput parámetros para actualizar el saldo del cliente por
// cambio de estado de pedido.
type BalanceOrderStatusInput struct {
	CustomerID  string `json:"customer_id"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	NewStatus   string `json:"new_status"`
	OldStatus   string `json:"old_status"`
}

// BalancePaymentMethodInput parámetros para actualizar el saldo por cambio de
// método de pago de un pedido.
type BalancePaymentMethodInput struct {
	CustomerID string `json:"customer_id"`
	OrderID    string `json:"order_id"`
	NewMethod  string `json:"new_method"`
	OldMethod  string `json:"old_method"`
}

// ManualPaymentInput abono manual registrado desde el dashboard.
type ManualPaymentInput struct {
	CustomerID    string          `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Reference     string          `json:"reference,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// BalanceSyncResult contadores del resync completo de saldos.
type BalanceSyncResult struct {
	UpdatedCount int `json:"updated_count"`
	ErrorCount   int `json:"error_count"`
}
