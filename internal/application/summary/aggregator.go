// Package summary deriva las estadísticas de resumen de inventario que
// muestra el dashboard (conteos, valor total, bajos de stock, agotados).
package summary

import (
	"context"

	"github.com/tu-usuario/gestion-pro/internal/application/dto"
)

// Valuator valora el inventario completo. Lo implementa el coordinador de
// stock; el agregador delega para que exista una sola fórmula de valoración
// en toda la aplicación.
type Valuator interface {
	CalculateInventoryValue(ctx context.Context) dto.InventoryValuation
}

// InventoryReader trae el snapshot crudo de inventario del backend.
type InventoryReader interface {
	GetInventory(ctx context.Context) (dto.Result[dto.InventorySnapshot], error)
}

// Aggregator calcula el InventorySummary. No guarda estado: el resumen se
// recalcula bajo demanda y se reemplaza completo, nunca parcialmente.
type Aggregator struct {
	reader   InventoryReader
	valuator Valuator
}

// NewAggregator construye el agregador.
func NewAggregator(reader InventoryReader, valuator Valuator) *Aggregator {
	return &Aggregator{reader: reader, valuator: valuator}
}

// FetchSummary trae el inventario y deriva el resumen. Si el backend ya
// incluye uno precalculado, ese es autoritativo y se usa tal cual.
// Ruta de lectura: ante cualquier fallo degrada a un resumen en ceros.
func (a *Aggregator) FetchSummary(ctx context.Context) dto.InventorySummary {
	r, err := a.reader.GetInventory(ctx)
	if err != nil || !r.OK || r.Data == nil {
		return dto.InventorySummary{}
	}
	if r.Data.Summary != nil {
		return *r.Data.Summary
	}
	return a.ComputeSummary(ctx, r.Data.Records)
}

// ComputeSummary deriva el resumen desde los registros crudos:
//
//	totalProducts   = conteo de registros
//	totalValue      = valoración delegada al coordinador de stock
//	lowStockItems   = conteo de 0 < stock <= mínimo
//	outOfStockItems = conteo de stock == 0
//
// El stock efectivo de cada registro sale de current_stock con fallback al
// campo legado stock y default 0 (compatibilidad de migración de esquema).
func (a *Aggregator) ComputeSummary(ctx context.Context, records []dto.InventoryRecord) dto.InventorySummary {
	s := dto.InventorySummary{TotalProducts: len(records)}

	for _, rec := range records {
		cur := rec.EffectiveStock()
		switch {
		case cur == 0:
			s.OutOfStockItems++
		case cur <= rec.MinStock:
			s.LowStockItems++
		}
	}

	valuation := a.valuator.CalculateInventoryValue(ctx)
	s.TotalValue = valuation.TotalValue

	return s
}
