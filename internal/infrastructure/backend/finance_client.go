package backend

import (
	"context"
	"net/http"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
)

// Operaciones de finanzas, settings y reportes (implementa finance.Gateway).

func (c *Client) CreateExpense(ctx context.Context, in dto.ExpenseInput) (dto.Result[struct{}], error) {
	return call[struct{}](ctx, c, http.MethodPost, "/finance/expenses", in, nil)
}

// GetSettings lee el blob de configuración. Backends antiguos entregan el
// campo "groups" donde los nuevos usan "store"; el remapeo se hace aquí para
// que el resto de la aplicación solo conozca "store".
func (c *Client) GetSettings(ctx context.Context) (dto.Result[dto.Settings], error) {
	r, err := call[dto.Settings](ctx, c, http.MethodGet, "/settings", nil, nil)
	if err != nil || !r.OK || r.Data == nil {
		return r, err
	}

	s := *r.Data
	if v, ok := s["groups"]; ok {
		if _, exists := s["store"]; !exists {
			s["store"] = v
		}
		delete(s, "groups")
	}
	return r, nil
}

func (c *Client) UpdateSettings(ctx context.Context, s dto.Settings) (dto.Result[struct{}], error) {
	return call[struct{}](ctx, c, http.MethodPut, "/settings", s, nil)
}

func (c *Client) GetDashboardSummary(ctx context.Context) (dto.Result[dto.DashboardSummaryDTO], error) {
	return call[dto.DashboardSummaryDTO](ctx, c, http.MethodGet, "/dashboard/summary", nil, nil)
}

func (c *Client) GetDailyReport(ctx context.Context, date string) (dto.Result[dto.ProfitReportDTO], error) {
	return call[dto.ProfitReportDTO](ctx, c, http.MethodGet, "/daily-report", nil, map[string]string{"date": date})
}

func (c *Client) GetMonthlyReport(ctx context.Context, month string) (dto.Result[dto.ProfitReportDTO], error) {
	return call[dto.ProfitReportDTO](ctx, c, http.MethodGet, "/monthly-report", nil, map[string]string{"month": month})
}

func (c *Client) GetReport(ctx context.Context, name string, query map[string]string) (dto.Result[dto.ReportPayload], error) {
	return call[dto.ReportPayload](ctx, c, http.MethodGet, "/reports/"+name, nil, query)
}
