package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/finance"
	"github.com/tu-usuario/gestion-pro/internal/application/summary"
)

// DashboardHandler maneja los endpoints de resumen y reportes del dashboard.
// Todas son rutas de lectura: degradan a ceros en lugar de fallar, para que
// el dashboard siempre pueda renderizar.
type DashboardHandler struct {
	aggregator *summary.Aggregator
	financeUC  *finance.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(aggregator *summary.Aggregator, financeUC *finance.UseCase) *DashboardHandler {
	return &DashboardHandler{aggregator: aggregator, financeUC: financeUC}
}

// GetInventorySummary devuelve el resumen de inventario derivado.
// GET /api/inventory/summary
func (h *DashboardHandler) GetInventorySummary(c *fiber.Ctx) error {
	return c.JSON(h.aggregator.FetchSummary(c.Context()))
}

// GetSummary devuelve los KPIs financieros del dashboard.
// GET /api/dashboard/summary
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.financeUC.GetDashboardSummary(c.Context()))
}

// GetDailyReport reporte de utilidad del día.
// GET /api/reports/daily?date=YYYY-MM-DD
func (h *DashboardHandler) GetDailyReport(c *fiber.Ctx) error {
	return c.JSON(h.financeUC.GetDailyReport(c.Context(), c.Query("date")))
}

// GetMonthlyReport reporte de utilidad del mes.
// GET /api/reports/monthly?month=YYYY-MM
func (h *DashboardHandler) GetMonthlyReport(c *fiber.Ctx) error {
	return c.JSON(h.financeUC.GetMonthlyReport(c.Context(), c.Query("month")))
}

// GetReport reporte con nombre del catálogo del backend; la query se pasa tal
// cual (cada reporte define sus propios parámetros).
// GET /api/reports/:name
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	payload := h.financeUC.GetReport(c.Context(), c.Params("name"), c.Queries())
	if payload == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte no disponible"})
	}
	return c.JSON(payload)
}
