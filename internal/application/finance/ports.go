package finance

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
)

// Gateway puerto de salida hacia los endpoints de finanzas y reportes del
// backend (gastos, settings del negocio, reportes de utilidad).
type Gateway interface {
	CreateExpense(ctx context.Context, in dto.ExpenseInput) (dto.Result[struct{}], error)
	// GetSettings aplica el remapeo groups -> store antes de entregar el blob.
	GetSettings(ctx context.Context) (dto.Result[dto.Settings], error)
	UpdateSettings(ctx context.Context, s dto.Settings) (dto.Result[struct{}], error)
	GetDashboardSummary(ctx context.Context) (dto.Result[dto.DashboardSummaryDTO], error)
	GetDailyReport(ctx context.Context, date string) (dto.Result[dto.ProfitReportDTO], error)
	GetMonthlyReport(ctx context.Context, month string) (dto.Result[dto.ProfitReportDTO], error)
	// GetReport trae un reporte con nombre arbitrario; el backend define el
	// catálogo y el esquema de cada uno.
	GetReport(ctx context.Context, name string, query map[string]string) (dto.Result[dto.ReportPayload], error)
}
