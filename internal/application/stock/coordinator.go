// Package stock contiene el coordinador de reconciliación de stock: orquesta
// validaciones, mutaciones y lotes contra el backend, y mantiene las cachés
// en memoria de alertas y movimientos que lee el dashboard.
//
// El backend es la única fuente de verdad; las cachés locales existen para
// evitar llamadas redundantes dentro de un ciclo de render y deben tratarse
// como eventualmente obsoletas.
package stock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/notify"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

const (
	defaultMovementCap  = 200
	defaultPollInterval = 5 * time.Second

	// Mensajes genéricos cuando el backend no aporta uno.
	msgBackendUnavailable = "backend no disponible"
)

// Coordinator coordina las operaciones de stock entre el dashboard y el
// backend. Único escritor de sus cachés; cualquier número de lectores.
type Coordinator struct {
	gateway  LedgerGateway
	notifier notify.Notifier
	log      *logger.Logger

	movementCap int

	mu        sync.RWMutex
	alerts    []dto.StockAlert
	movements []dto.StockMovement
	loading   bool
}

// NewCoordinator construye el coordinador. movementCap acota la caché de
// movimientos (<= 0 usa el default).
func NewCoordinator(gateway LedgerGateway, notifier notify.Notifier, log *logger.Logger, movementCap int) *Coordinator {
	if movementCap <= 0 {
		movementCap = defaultMovementCap
	}
	return &Coordinator{
		gateway:     gateway,
		notifier:    notifier,
		log:         log.Component("stock-coordinator"),
		movementCap: movementCap,
	}
}

// HandleOrderStatusChange delega al backend el ajuste de stock de una
// transición de estado de pedido y devuelve su veredicto tal cual, para que
// el caller pueda ramificar. En éxito refresca alertas (best-effort); en
// fallo entrega el mensaje del backend sin reintentar.
func (c *Coordinator) HandleOrderStatusChange(ctx context.Context, in dto.OrderStatusChangeInput) dto.Result[dto.OrderStockResult] {
	r, err := c.gateway.ApplyOrderStatusChange(ctx, in)
	if err != nil {
		c.log.Error().Err(err).Str("order_id", in.OrderID).Msg("ajuste de stock por cambio de estado")
		c.notifier.Error("Stock", msgBackendUnavailable)
		return dto.Failure[dto.OrderStockResult](msgBackendUnavailable)
	}
	if !r.OK {
		c.notifier.Error("Stock", c.messageOr(r.Message, "no se pudo ajustar el stock del pedido"))
		return r
	}

	c.RefreshAlerts(ctx)
	c.notifier.Success("Stock", fmt.Sprintf("stock ajustado para el pedido %s", in.OrderNumber))
	return r
}

// ValidateStock consulta disponibilidad. Un fallo de transporte jamás puede
// confundirse con "hay stock": degrada a inválido con disponible 0.
func (c *Coordinator) ValidateStock(ctx context.Context, productID string, quantity float64) dto.StockValidationResult {
	r, err := c.gateway.ValidateStock(ctx, productID, quantity)
	if err != nil || !r.OK || r.Data == nil {
		if err != nil {
			c.log.Warn().Err(err).Str("product_id", productID).Msg("validar stock")
		}
		return dto.StockValidationResult{
			IsValid:           false,
			AvailableStock:    0,
			RequestedQuantity: quantity,
			Message:           c.messageOr(r.Message, "error validando stock"),
		}
	}
	return *r.Data
}

// DeductStock aplica una salida de stock. Tras la llamada intenta refrescar
// alertas incondicionalmente; un fallo del refresco no enmascara el resultado
// de la mutación.
func (c *Coordinator) DeductStock(ctx context.Context, productID string, quantity float64, reason, reference string) dto.Result[dto.StockLevel] {
	return c.mutateStock(ctx, dto.MovementTypeDeduction, productID, quantity, reason, reference)
}

// AddStock aplica una entrada de stock. Misma disciplina de refresco que DeductStock.
func (c *Coordinator) AddStock(ctx context.Context, productID string, quantity float64, reason, reference string) dto.Result[dto.StockLevel] {
	return c.mutateStock(ctx, dto.MovementTypeAddition, productID, quantity, reason, reference)
}

func (c *Coordinator) mutateStock(ctx context.Context, movType, productID string, quantity float64, reason, reference string) dto.Result[dto.StockLevel] {
	defer c.RefreshAlerts(ctx)

	var (
		r   dto.Result[dto.StockLevel]
		err error
	)
	if movType == dto.MovementTypeDeduction {
		r, err = c.gateway.DeductStock(ctx, productID, quantity, reason, reference)
	} else {
		r, err = c.gateway.AddStock(ctx, productID, quantity, reason, reference)
	}
	if err != nil {
		c.log.Error().Err(err).Str("product_id", productID).Str("type", movType).Msg("mutación de stock")
		c.notifier.Error("Stock", msgBackendUnavailable)
		return dto.Failure[dto.StockLevel](msgBackendUnavailable)
	}
	if !r.OK {
		c.notifier.Error("Stock", c.messageOr(r.Message, "operación de stock rechazada"))
		return r
	}

	c.appendMovement(dto.StockMovement{
		ProductID: productID,
		Quantity:  quantity,
		Type:      movType,
		Reason:    reason,
		Reference: reference,
		CreatedAt: time.Now(),
	})
	return r
}

// BulkStockOperation aplica un lote heterogéneo de entradas y salidas como
// una unidad lógica. Éxito global solo si todas las sub-operaciones aplican;
// el fallo parcial se reporta con el conteo de rechazadas, distinto del fallo
// total. Siempre que el backend haya procesado el lote se refrescan alertas,
// haya habido éxito o fallo parcial.
func (c *Coordinator) BulkStockOperation(ctx context.Context, operations []dto.StockOperationInput) dto.BulkOperationOutcome {
	if len(operations) == 0 {
		return dto.BulkOperationOutcome{Success: true}
	}

	r, err := c.gateway.BulkApply(ctx, operations)
	if err != nil {
		c.log.Error().Err(err).Int("operations", len(operations)).Msg("lote de stock")
		c.notifier.Error("Stock", msgBackendUnavailable)
		return dto.BulkOperationOutcome{Success: false, FailedCount: len(operations), Message: msgBackendUnavailable}
	}

	defer c.RefreshAlerts(ctx)

	if !r.OK {
		msg := c.messageOr(r.Message, "lote de stock rechazado")
		c.notifier.Error("Stock", msg)
		return dto.BulkOperationOutcome{Success: false, FailedCount: len(operations), Message: msg}
	}

	var applied dto.BulkApplyResult
	if r.Data != nil {
		applied = *r.Data
	}

	failed := len(applied.Failures)
	if failed == 0 {
		c.recordBulkMovements(operations, nil)
		c.notifier.Success("Stock", fmt.Sprintf("%d operaciones de stock aplicadas", len(operations)))
		return dto.BulkOperationOutcome{Success: true}
	}

	c.recordBulkMovements(operations, applied.Failures)
	msg := fmt.Sprintf("%d de %d operaciones de stock fallaron", failed, len(operations))
	c.notifier.Warning("Stock", msg)
	return dto.BulkOperationOutcome{Success: false, FailedCount: failed, Message: msg}
}

// recordBulkMovements anota en la caché las sub-operaciones que sí aplicaron.
func (c *Coordinator) recordBulkMovements(operations []dto.StockOperationInput, failures []dto.BulkItemFailure) {
	rejected := make(map[string]bool, len(failures))
	for _, f := range failures {
		rejected[f.ProductID] = true
	}
	now := time.Now()
	for _, op := range operations {
		if rejected[op.ProductID] {
			continue
		}
		c.appendMovement(dto.StockMovement{
			ProductID: op.ProductID,
			Quantity:  op.Quantity,
			Type:      op.Type,
			Reason:    op.Reason,
			Reference: op.Reference,
			CreatedAt: now,
		})
	}
}

// RefreshAlerts trae el set completo de alertas y reemplaza la caché en un
// swap atómico (nunca merge incremental). Por cada alerta crítica emite una
// notificación individual.
//
// Política ante fallo del fetch: conservar la última caché buena (fail-stale)
// en lugar de vaciarla; el dashboard sigue mostrando datos, marcados como
// eventualmente obsoletos. Nunca retorna error.
func (c *Coordinator) RefreshAlerts(ctx context.Context) []dto.StockAlert {
	c.setLoading(true)
	defer c.setLoading(false)

	r, err := c.gateway.FetchAlerts(ctx)
	if err != nil || !r.OK {
		if err != nil {
			c.log.Warn().Err(err).Msg("refrescar alertas")
		} else {
			c.log.Warn().Str("message", r.Message).Msg("refrescar alertas rechazado")
		}
		return c.Alerts()
	}

	var fresh []dto.StockAlert
	if r.Data != nil {
		fresh = *r.Data
	}

	c.mu.Lock()
	c.alerts = fresh
	c.mu.Unlock()

	for _, a := range fresh {
		if a.Severity == dto.AlertSeverityCritical {
			c.notifier.Warning("Stock agotado", fmt.Sprintf("%s sin existencias", a.ProductName))
		}
	}

	return c.Alerts()
}

// GetCurrentStock lee el stock actual de un producto; 0 ante cualquier fallo.
func (c *Coordinator) GetCurrentStock(ctx context.Context, productID string) float64 {
	r, err := c.gateway.GetCurrentStock(ctx, productID)
	if err != nil || !r.OK || r.Data == nil {
		if err != nil {
			c.log.Warn().Err(err).Str("product_id", productID).Msg("consultar stock actual")
		}
		return 0
	}
	return r.Data.Quantity
}

// CalculateInventoryValue delega la valoración al backend para que exista una
// sola fórmula en toda la aplicación; ceros ante cualquier fallo.
func (c *Coordinator) CalculateInventoryValue(ctx context.Context) dto.InventoryValuation {
	r, err := c.gateway.GetInventoryValuation(ctx)
	if err != nil || !r.OK || r.Data == nil {
		if err != nil {
			c.log.Warn().Err(err).Msg("valoración de inventario")
		}
		return dto.InventoryValuation{TotalValue: decimal.Zero}
	}
	return *r.Data
}

// RunMovementPoller refresca la caché de movimientos en un intervalo fijo,
// independiente de las mutaciones en vuelo (tick pasivo, no event-driven).
// Bloquea hasta que ctx se cancele; tras la cancelación no vuelve a tocar el
// gateway.
func (c *Coordinator) RunMovementPoller(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.Debug().Msg("poller de movimientos detenido")
			return
		case <-ticker.C:
			c.refreshMovements(ctx)
		}
	}
}

// refreshMovements trae los movimientos recientes y reemplaza la caché
// completa, acotada a movementCap. Fail-stale ante cualquier fallo.
func (c *Coordinator) refreshMovements(ctx context.Context) {
	r, err := c.gateway.FetchMovements(ctx, c.movementCap)
	if err != nil || !r.OK {
		if err != nil {
			c.log.Debug().Err(err).Msg("refrescar movimientos")
		}
		return
	}

	var fresh []dto.StockMovement
	if r.Data != nil {
		fresh = *r.Data
	}
	if len(fresh) > c.movementCap {
		fresh = fresh[len(fresh)-c.movementCap:]
	}

	c.mu.Lock()
	c.movements = fresh
	c.mu.Unlock()
}

// appendMovement agrega un movimiento a la caché; al superar la cota se
// descarta el más antiguo.
func (c *Coordinator) appendMovement(m dto.StockMovement) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movements = append(c.movements, m)
	if len(c.movements) > c.movementCap {
		c.movements = c.movements[len(c.movements)-c.movementCap:]
	}
}

// Alerts devuelve una copia de la caché de alertas.
func (c *Coordinator) Alerts() []dto.StockAlert {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]dto.StockAlert, len(c.alerts))
	copy(out, c.alerts)
	return out
}

// Movements devuelve una copia de la caché de movimientos (el más reciente al final).
func (c *Coordinator) Movements() []dto.StockMovement {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]dto.StockMovement, len(c.movements))
	copy(out, c.movements)
	return out
}

// IsLoading indica si hay un refresco de alertas en curso.
func (c *Coordinator) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

func (c *Coordinator) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

func (c *Coordinator) messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}
