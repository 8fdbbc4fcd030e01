// Package finance orquesta los gastos, la configuración del negocio y los
// reportes de utilidad contra el backend.
package finance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
	"github.com/tu-usuario/gestion-pro/internal/application/notify"
	"github.com/tu-usuario/gestion-pro/internal/domain"
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

// UseCase casos de uso de finanzas. Mutaciones (gastos, settings) propagan
// fallos; los reportes son vistas y degradan a ceros.
type UseCase struct {
	gateway  Gateway
	notifier notify.Notifier
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(gateway Gateway, notifier notify.Notifier, log *logger.Logger) *UseCase {
	return &UseCase{
		gateway:  gateway,
		notifier: notifier,
		log:      log.Component("finance"),
	}
}

// RegisterExpense valida y registra un gasto. La fecha debe venir como
// YYYY-MM-DD, que es lo que espera el backend.
func (uc *UseCase) RegisterExpense(ctx context.Context, in dto.ExpenseInput) error {
	if in.Category == "" || !in.Amount.IsPositive() {
		return domain.ErrInvalidInput
	}
	if _, err := time.Parse(time.DateOnly, in.Date); err != nil {
		return domain.ErrInvalidInput
	}

	r, err := uc.gateway.CreateExpense(ctx, in)
	if err != nil {
		return fmt.Errorf("registrar gasto: %w", err)
	}
	if !r.OK {
		if r.Message == "" {
			return errors.New("gasto rechazado")
		}
		return errors.New(r.Message)
	}

	uc.notifier.Success("Gastos", fmt.Sprintf("gasto de %s registrado en %s", in.Amount.StringFixed(2), in.Category))
	return nil
}

// GetSettings devuelve el blob de configuración del negocio; nil ante fallo.
func (uc *UseCase) GetSettings(ctx context.Context) dto.Settings {
	r, err := uc.gateway.GetSettings(ctx)
	if err != nil || !r.OK || r.Data == nil {
		if err != nil {
			uc.log.Warn().Err(err).Msg("leer settings")
		}
		return nil
	}
	return *r.Data
}

// SaveSettings persiste el blob de configuración en el backend.
func (uc *UseCase) SaveSettings(ctx context.Context, s dto.Settings) error {
	if len(s) == 0 {
		return domain.ErrInvalidInput
	}
	r, err := uc.gateway.UpdateSettings(ctx, s)
	if err != nil {
		return fmt.Errorf("guardar settings: %w", err)
	}
	if !r.OK {
		if r.Message == "" {
			return errors.New("settings rechazados")
		}
		return errors.New(r.Message)
	}
	return nil
}

// GetDashboardSummary KPIs del dashboard; ceros ante cualquier fallo.
func (uc *UseCase) GetDashboardSummary(ctx context.Context) dto.DashboardSummaryDTO {
	r, err := uc.gateway.GetDashboardSummary(ctx)
	if err != nil || !r.OK || r.Data == nil {
		if err != nil {
			uc.log.Warn().Err(err).Msg("resumen de dashboard")
		}
		return dto.DashboardSummaryDTO{}
	}
	return *r.Data
}

// GetDailyReport reporte de utilidad del día indicado (YYYY-MM-DD; vacío = hoy).
func (uc *UseCase) GetDailyReport(ctx context.Context, date string) dto.ProfitReportDTO {
	if date == "" {
		date = time.Now().Format(time.DateOnly)
	}
	r, err := uc.gateway.GetDailyReport(ctx, date)
	if err != nil || !r.OK || r.Data == nil {
		if err != nil {
			uc.log.Warn().Err(err).Str("date", date).Msg("reporte diario")
		}
		return dto.ProfitReportDTO{Period: date}
	}
	return *r.Data
}

// GetReport trae un reporte con nombre arbitrario del catálogo del backend;
// nil ante nombre vacío o cualquier fallo.
func (uc *UseCase) GetReport(ctx context.Context, name string, query map[string]string) dto.ReportPayload {
	if name == "" {
		return nil
	}
	r, err := uc.gateway.GetReport(ctx, name, query)
	if err != nil || !r.OK || r.Data == nil {
		if err != nil {
			uc.log.Warn().Err(err).Str("report", name).Msg("reporte con nombre")
		}
		return nil
	}
	return *r.Data
}

// GetMonthlyReport reporte de utilidad del mes indicado (YYYY-MM; vacío = mes actual).
func (uc *UseCase) GetMonthlyReport(ctx context.Context, month string) dto.ProfitReportDTO {
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	r, err := uc.gateway.GetMonthlyReport(ctx, month)
	if err != nil || !r.OK || r.Data == nil {
		if err != nil {
			uc.log.Warn().Err(err).Str("month", month).Msg("reporte mensual")
		}
		return dto.ProfitReportDTO{Period: month}
	}
	return *r.Data
}
