// Package balance contiene el coordinador de reconciliación de saldos de
// clientes. El cálculo vive en el backend; aquí solo se orquesta y se decide
// cómo propaga cada fallo.
//
// Asimetría deliberada del contrato de errores: las mutaciones que mueven
// dinero (abonos, recálculos por transición) fallan ruidosamente devolviendo
// error, para obligar al caller a manejarlo; las lecturas degradan a
// nil/vacío para que el dashboard siga renderizando.
package balance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/notify"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

// Coordinator coordina las operaciones de saldo entre el dashboard y el backend.
type Coordinator struct {
	gateway  LedgerGateway
	notifier notify.Notifier
	log      *logger.Logger
}

// NewCoordinator construye el coordinador.
func NewCoordinator(gateway LedgerGateway, notifier notify.Notifier, log *logger.Logger) *Coordinator {
	return &Coordinator{
		gateway:  gateway,
		notifier: notifier,
		log:      log.Component("balance-coordinator"),
	}
}

// UpdateBalanceForOrderStatusChange recalcula el saldo del cliente tras una
// transición de estado de pedido. Éxito con payload notifica; éxito sin
// payload es un no-op silencioso (la transición no afectaba el saldo);
// cualquier fallo, incluido el rechazo de negocio, se devuelve como error con
// el mensaje del backend intacto.
func (c *Coordinator) UpdateBalanceForOrderStatusChange(ctx context.Context, in dto.BalanceOrderStatusInput) (*dto.BalanceUpdate, error) {
	r, err := c.gateway.UpdateBalanceForOrderStatusChange(ctx, in)
	return c.finishBalanceUpdate(r, err, fmt.Sprintf("saldo actualizado por el pedido %s", in.OrderNumber))
}

// UpdateBalanceForPaymentMethodChange recalcula el saldo tras un cambio de
// método de pago. Mismo contrato que UpdateBalanceForOrderStatusChange.
func (c *Coordinator) UpdateBalanceForPaymentMethodChange(ctx context.Context, in dto.BalancePaymentMethodInput) (*dto.BalanceUpdate, error) {
	r, err := c.gateway.UpdateBalanceForPaymentMethodChange(ctx, in)
	return c.finishBalanceUpdate(r, err, fmt.Sprintf("saldo actualizado por cambio de método de pago del pedido %s", in.OrderID))
}

func (c *Coordinator) finishBalanceUpdate(r dto.Result[dto.BalanceUpdate], err error, successMsg string) (*dto.BalanceUpdate, error) {
	if err != nil {
		return nil, fmt.Errorf("actualizar saldo: %w", err)
	}
	if !r.OK {
		// El mensaje del backend debe llegar intacto al caller.
		if r.Message == "" {
			return nil, errors.New("actualización de saldo rechazada")
		}
		return nil, errors.New(r.Message)
	}
	if r.Data == nil {
		return nil, nil // la transición no afectaba el saldo
	}
	c.notifier.Success("Saldo", successMsg)
	return r.Data, nil
}

// GetCustomerBalance devuelve el snapshot del cliente o nil ante cualquier
// fallo; nunca propaga un error más allá de esta frontera.
func (c *Coordinator) GetCustomerBalance(ctx context.Context, customerID string) *dto.CustomerBalanceDetails {
	r, err := c.gateway.GetCustomerBalance(ctx, customerID)
	if err != nil || !r.OK || r.Data == nil {
		if err != nil {
			c.log.Warn().Err(err).Str("customer_id", customerID).Msg("consultar saldo")
		}
		return nil
	}
	return r.Data
}

// RecordManualPayment registra un abono manual. Valida antes de delegar y
// propaga cualquier fallo; si no viene referencia se genera una.
func (c *Coordinator) RecordManualPayment(ctx context.Context, in dto.ManualPaymentInput) (*dto.BalanceTransaction, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidCustomer
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Reference == "" {
		in.Reference = "PAY-" + uuid.New().String()
	}

	r, err := c.gateway.RecordManualPayment(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("registrar abono: %w", err)
	}
	if !r.OK {
		if r.Message == "" {
			return nil, errors.New("abono rechazado")
		}
		return nil, errors.New(r.Message)
	}

	c.notifier.Success("Saldo", fmt.Sprintf("abono de %s registrado", in.Amount.StringFixed(2)))
	return r.Data, nil
}

// GetTransactionHistory devuelve el historial paginado del cliente; lista
// vacía ante cualquier fallo (las vistas degradan, no propagan).
func (c *Coordinator) GetTransactionHistory(ctx context.Context, customerID string, page dto.PageRequest) []dto.BalanceTransaction {
	page.DefaultPage()

	r, err := c.gateway.GetTransactionHistory(ctx, customerID, page)
	if err != nil || !r.OK || r.Data == nil {
		if err != nil {
			c.log.Warn().Err(err).Str("customer_id", customerID).Msg("historial de transacciones")
		}
		return []dto.BalanceTransaction{}
	}
	return *r.Data
}

// SyncAllCustomerBalances dispara el resync completo en el backend y reporta
// los contadores de actualizados y errores; propaga ante fallo total.
func (c *Coordinator) SyncAllCustomerBalances(ctx context.Context) (*dto.BalanceSyncResult, error) {
	r, err := c.gateway.SyncAllBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("sincronizar saldos: %w", err)
	}
	if !r.OK {
		if r.Message == "" {
			return nil, errors.New("sincronización de saldos rechazada")
		}
		return nil, errors.New(r.Message)
	}

	var res dto.BalanceSyncResult
	if r.Data != nil {
		res = *r.Data
	}
	if res.ErrorCount > 0 {
		c.notifier.Warning("Saldos", fmt.Sprintf("%d saldos actualizados, %d con error", res.UpdatedCount, res.ErrorCount))
	} else {
		c.notifier.Success("Saldos", fmt.Sprintf("%d saldos actualizados", res.UpdatedCount))
	}
	return &res, nil
}
