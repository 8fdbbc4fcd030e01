package dto

import "github.com/shopspring/decimal"

// ExpenseInput gasto registrado vía POST /finance/expenses.
// Date viaja como "YYYY-MM-DD" (formato que espera el backend).
type ExpenseInput struct {
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Reference     string          `json:"reference,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	ReceiptURL    string          `json:"receipt_url,omitempty"`
}

// Settings blob de configuración del negocio. Es un documento libre que el
// backend versiona; en lecturas el gateway remapea el campo legado "groups"
// a "store" antes de entregarlo.
type Settings map[string]interface{}

// ReportPayload reporte con nombre entregado por el backend. Cada reporte
// define su propio esquema; el dashboard lo consume tal cual.
type ReportPayload map[string]interface{}

// DashboardSummaryDTO KPIs principales para el widget del dashboard.
type DashboardSummaryDTO struct {
	TodaySales    decimal.Decimal `json:"today_sales"`
	TodayExpenses decimal.Decimal `json:"today_expenses"`
	TodayProfit   decimal.Decimal `json:"today_profit"`
	MonthSales    decimal.Decimal `json:"month_sales"`
	MonthExpenses decimal.Decimal `json:"month_expenses"`
	MonthProfit   decimal.Decimal `json:"month_profit"`
	PendingOrders int             `json:"pending_orders"`
	DateLabel     string          `json:"date_label"` // ej: "Agosto 2026"
}

// ProfitReportDTO reporte de utilidad de un período (diario o mensual).
type ProfitReportDTO struct {
	Period     string          `json:"period"` // "2026-08-30" o "2026-08"
	Sales      decimal.Decimal `json:"sales"`
	Expenses   decimal.Decimal `json:"expenses"`
	Profit     decimal.Decimal `json:"profit"`
	OrderCount int             `json:"order_count"`
}
