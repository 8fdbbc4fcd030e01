package balance_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/gestion-pro/internal/application/balance"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

// fakeGateway implementa balance.LedgerGateway con funciones inyectables.
type fakeGateway struct {
	balanceFn     func() (dto.Result[dto.CustomerBalanceDetails], error)
	orderFn       func() (dto.Result[dto.BalanceUpdate], error)
	paymentMethFn func() (dto.Result[dto.BalanceUpdate], error)
	manualFn      func(in dto.ManualPaymentInput) (dto.Result[dto.BalanceTransaction], error)
	historyFn     func(page dto.PageRequest) (dto.Result[[]dto.BalanceTransaction], error)
	syncFn        func() (dto.Result[dto.BalanceSyncResult], error)
}

func (g *fakeGateway) GetCustomerBalance(ctx context.Context, customerID string) (dto.Result[dto.CustomerBalanceDetails], error) {
	return g.balanceFn()
}

func (g *fakeGateway) UpdateBalanceForOrderStatusChange(ctx context.Context, in dto.BalanceOrderStatusInput) (dto.Result[dto.BalanceUpdate], error) {
	return g.orderFn()
}

func (g *fakeGateway) UpdateBalanceForPaymentMethodChange(ctx context.Context, in dto.BalancePaymentMethodInput) (dto.Result[dto.BalanceUpdate], error) {
	return g.paymentMethFn()
}

func (g *fakeGateway) RecordManualPayment(ctx context.Context, in dto.ManualPaymentInput) (dto.Result[dto.BalanceTransaction], error) {
	return g.manualFn(in)
}

func (g *fakeGateway) GetTransactionHistory(ctx context.Context, customerID string, page dto.PageRequest) (dto.Result[[]dto.BalanceTransaction], error) {
	return g.historyFn(page)
}

func (g *fakeGateway) SyncAllBalances(ctx context.Context) (dto.Result[dto.BalanceSyncResult], error) {
	return g.syncFn()
}

// recordingNotifier acumula las notificaciones emitidas.
type recordingNotifier struct {
	mu       sync.Mutex
	oks      []string
	warnings []string
	errors   []string
}

func (n *recordingNotifier) Success(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.oks = append(n.oks, message)
}

func (n *recordingNotifier) Warning(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warnings = append(n.warnings, message)
}

func (n *recordingNotifier) Error(title, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, message)
}

func newCoordinator(g *fakeGateway, n *recordingNotifier) *balance.Coordinator {
	return balance.NewCoordinator(g, n, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones de saldo
// ──────────────────────────────────────────────────────────────────────────────

// El rechazo del backend debe llegar al caller como error con el mensaje
// textual, sin envolver ni traducir.
func TestUpdateBalanceForOrderStatusChange_RechazoConservaMensajeTextual(t *testing.T) {
	g := &fakeGateway{
		orderFn: func() (dto.Result[dto.BalanceUpdate], error) {
			return dto.Failure[dto.BalanceUpdate]("insufficient funds"), nil
		},
	}
	c := newCoordinator(g, &recordingNotifier{})

	upd, err := c.UpdateBalanceForOrderStatusChange(context.Background(), dto.BalanceOrderStatusInput{
		CustomerID: "c-1", OrderID: "o-1", OrderNumber: "ORD-001",
	})

	require.Error(t, err)
	assert.Nil(t, upd)
	assert.Equal(t, "insufficient funds", err.Error(), "el mensaje del backend debe conservarse textual")
}

func TestUpdateBalanceForOrderStatusChange_ExitoNotifica(t *testing.T) {
	g := &fakeGateway{
		orderFn: func() (dto.Result[dto.BalanceUpdate], error) {
			upd := dto.BalanceUpdate{CustomerID: "c-1", NewBalance: decimal.NewFromInt(150)}
			return dto.Result[dto.BalanceUpdate]{OK: true, Data: &upd}, nil
		},
	}
	n := &recordingNotifier{}
	c := newCoordinator(g, n)

	upd, err := c.UpdateBalanceForOrderStatusChange(context.Background(), dto.BalanceOrderStatusInput{
		CustomerID: "c-1", OrderID: "o-1", OrderNumber: "ORD-001",
	})

	require.NoError(t, err)
	require.NotNil(t, upd)
	assert.True(t, upd.NewBalance.Equal(decimal.NewFromInt(150)))
	assert.Len(t, n.oks, 1)
}

// Éxito sin payload = la transición no tocaba el saldo: no-op sin notificación.
func TestUpdateBalanceForOrderStatusChange_SinPayloadEsNoOp(t *testing.T) {
	g := &fakeGateway{
		orderFn: func() (dto.Result[dto.BalanceUpdate], error) {
			return dto.Result[dto.BalanceUpdate]{OK: true}, nil
		},
	}
	n := &recordingNotifier{}
	c := newCoordinator(g, n)

	upd, err := c.UpdateBalanceForOrderStatusChange(context.Background(), dto.BalanceOrderStatusInput{
		CustomerID: "c-1", OrderID: "o-1",
	})

	require.NoError(t, err)
	assert.Nil(t, upd)
	assert.Empty(t, n.oks, "un no-op no debe notificar")
}

func TestUpdateBalanceForPaymentMethodChange_TransporteCaidoPropagaError(t *testing.T) {
	g := &fakeGateway{
		paymentMethFn: func() (dto.Result[dto.BalanceUpdate], error) {
			return dto.Result[dto.BalanceUpdate]{}, errors.New("connection refused")
		},
	}
	c := newCoordinator(g, &recordingNotifier{})

	upd, err := c.UpdateBalanceForPaymentMethodChange(context.Background(), dto.BalancePaymentMethodInput{
		CustomerID: "c-1", OrderID: "o-1",
	})

	require.Error(t, err)
	assert.Nil(t, upd)
	assert.ErrorContains(t, err, "connection refused")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

// La consulta de saldo degrada a nil ante cualquier fallo; jamás propaga.
func TestGetCustomerBalance_NilAnteCualquierFallo(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (dto.Result[dto.CustomerBalanceDetails], error)
	}{
		{"error de transporte", func() (dto.Result[dto.CustomerBalanceDetails], error) {
			return dto.Result[dto.CustomerBalanceDetails]{}, errors.New("timeout")
		}},
		{"rechazo de negocio", func() (dto.Result[dto.CustomerBalanceDetails], error) {
			return dto.Failure[dto.CustomerBalanceDetails]("cliente no encontrado"), nil
		}},
		{"éxito sin payload", func() (dto.Result[dto.CustomerBalanceDetails], error) {
			return dto.Result[dto.CustomerBalanceDetails]{OK: true}, nil
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newCoordinator(&fakeGateway{balanceFn: tc.fn}, &recordingNotifier{})
			assert.Nil(t, c.GetCustomerBalance(context.Background(), "c-1"))
		})
	}
}

func TestGetCustomerBalance_Exito(t *testing.T) {
	details := dto.CustomerBalanceDetails{CustomerID: "c-1", Balance: decimal.NewFromInt(80)}
	g := &fakeGateway{
		balanceFn: func() (dto.Result[dto.CustomerBalanceDetails], error) {
			return dto.Result[dto.CustomerBalanceDetails]{OK: true, Data: &details}, nil
		},
	}
	c := newCoordinator(g, &recordingNotifier{})

	got := c.GetCustomerBalance(context.Background(), "c-1")
	require.NotNil(t, got)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(80)))
}

func TestGetTransactionHistory_VaciaAnteFallo(t *testing.T) {
	g := &fakeGateway{
		historyFn: func(page dto.PageRequest) (dto.Result[[]dto.BalanceTransaction], error) {
			return dto.Result[[]dto.BalanceTransaction]{}, errors.New("timeout")
		},
	}
	c := newCoordinator(g, &recordingNotifier{})

	got := c.GetTransactionHistory(context.Background(), "c-1", dto.PageRequest{})
	assert.NotNil(t, got, "la vista espera una lista, nunca nil")
	assert.Empty(t, got)
}

func TestGetTransactionHistory_AplicaDefaultsDePaginacion(t *testing.T) {
	var seen dto.PageRequest
	g := &fakeGateway{
		historyFn: func(page dto.PageRequest) (dto.Result[[]dto.BalanceTransaction], error) {
			seen = page
			return dto.Result[[]dto.BalanceTransaction]{OK: true, Data: &[]dto.BalanceTransaction{}}, nil
		},
	}
	c := newCoordinator(g, &recordingNotifier{})

	c.GetTransactionHistory(context.Background(), "c-1", dto.PageRequest{})

	assert.Equal(t, 20, seen.Limit, "límite por defecto")
	assert.Zero(t, seen.Offset)
}

// ──────────────────────────────────────────────────────────────────────────────
// Abonos manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordManualPayment_ValidaEntrada(t *testing.T) {
	c := newCoordinator(&fakeGateway{}, &recordingNotifier{})

	_, err := c.RecordManualPayment(context.Background(), dto.ManualPaymentInput{
		Amount: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCustomer, "sin cliente no hay abono")

	_, err = c.RecordManualPayment(context.Background(), dto.ManualPaymentInput{
		CustomerID: "c-1", Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el monto debe ser positivo")

	_, err = c.RecordManualPayment(context.Background(), dto.ManualPaymentInput{
		CustomerID: "c-1", Amount: decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordManualPayment_GeneraReferenciaSiFalta(t *testing.T) {
	var seen dto.ManualPaymentInput
	g := &fakeGateway{
		manualFn: func(in dto.ManualPaymentInput) (dto.Result[dto.BalanceTransaction], error) {
			seen = in
			tx := dto.BalanceTransaction{ID: "t-1", Reference: in.Reference}
			return dto.Result[dto.BalanceTransaction]{OK: true, Data: &tx}, nil
		},
	}
	n := &recordingNotifier{}
	c := newCoordinator(g, n)

	tx, err := c.RecordManualPayment(context.Background(), dto.ManualPaymentInput{
		CustomerID: "c-1", Amount: decimal.NewFromInt(50),
	})

	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.True(t, strings.HasPrefix(seen.Reference, "PAY-"), "la referencia autogenerada lleva prefijo PAY-")
	assert.Len(t, n.oks, 1)
}

func TestRecordManualPayment_RespetaReferenciaExplicita(t *testing.T) {
	var seen dto.ManualPaymentInput
	g := &fakeGateway{
		manualFn: func(in dto.ManualPaymentInput) (dto.Result[dto.BalanceTransaction], error) {
			seen = in
			tx := dto.BalanceTransaction{ID: "t-1"}
			return dto.Result[dto.BalanceTransaction]{OK: true, Data: &tx}, nil
		},
	}
	c := newCoordinator(g, &recordingNotifier{})

	_, err := c.RecordManualPayment(context.Background(), dto.ManualPaymentInput{
		CustomerID: "c-1", Amount: decimal.NewFromInt(50), Reference: "RECIBO-77",
	})

	require.NoError(t, err)
	assert.Equal(t, "RECIBO-77", seen.Reference)
}

func TestRecordManualPayment_RechazoConservaMensaje(t *testing.T) {
	g := &fakeGateway{
		manualFn: func(in dto.ManualPaymentInput) (dto.Result[dto.BalanceTransaction], error) {
			return dto.Failure[dto.BalanceTransaction]("cliente bloqueado"), nil
		},
	}
	c := newCoordinator(g, &recordingNotifier{})

	_, err := c.RecordManualPayment(context.Background(), dto.ManualPaymentInput{
		CustomerID: "c-1", Amount: decimal.NewFromInt(50),
	})

	require.Error(t, err)
	assert.Equal(t, "cliente bloqueado", err.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Resync global
// ──────────────────────────────────────────────────────────────────────────────

func TestSyncAllCustomerBalances_ReportaContadores(t *testing.T) {
	g := &fakeGateway{
		syncFn: func() (dto.Result[dto.BalanceSyncResult], error) {
			res := dto.BalanceSyncResult{UpdatedCount: 12, ErrorCount: 0}
			return dto.Result[dto.BalanceSyncResult]{OK: true, Data: &res}, nil
		},
	}
	n := &recordingNotifier{}
	c := newCoordinator(g, n)

	res, err := c.SyncAllCustomerBalances(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 12, res.UpdatedCount)
	assert.Len(t, n.oks, 1)
	assert.Empty(t, n.warnings)
}

func TestSyncAllCustomerBalances_ErroresParcialesAdvierten(t *testing.T) {
	g := &fakeGateway{
		syncFn: func() (dto.Result[dto.BalanceSyncResult], error) {
			res := dto.BalanceSyncResult{UpdatedCount: 10, ErrorCount: 2}
			return dto.Result[dto.BalanceSyncResult]{OK: true, Data: &res}, nil
		},
	}
	n := &recordingNotifier{}
	c := newCoordinator(g, n)

	res, err := c.SyncAllCustomerBalances(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, res.ErrorCount)
	assert.Len(t, n.warnings, 1, "errores parciales deben advertirse")
}

func TestSyncAllCustomerBalances_FalloTotalPropaga(t *testing.T) {
	g := &fakeGateway{
		syncFn: func() (dto.Result[dto.BalanceSyncResult], error) {
			return dto.Result[dto.BalanceSyncResult]{}, errors.New("backend caído")
		},
	}
	c := newCoordinator(g, &recordingNotifier{})

	res, err := c.SyncAllCustomerBalances(context.Background())
	require.Error(t, err)
	assert.Nil(t, res)
}
