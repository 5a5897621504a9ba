package wms

import "erp/internal/models"

// NormalizeCount recomputes Difference as actual − system.
func NormalizeCount(c *models.StockCount) {
	c.Difference = c.ActualQuantity - c.SystemQuantity
}

// StockStatus classifies an on-hand quantity against its bounds.
func StockStatus(quantity, minStock, maxStock int) string {
	switch {
	case quantity < minStock:
		return "부족"
	case maxStock > 0 && quantity > maxStock:
		return "과다"
	}
	return "정상"
}

// NormalizeStock recomputes Status from the quantity bounds.
func NormalizeStock(s *models.StockItem) {
	s.Status = StockStatus(s.Quantity, s.MinStock, s.MaxStock)
}

// Utilization returns used/capacity in percent, or 0 for zero capacity.
func Utilization(used, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(used) / float64(capacity) * 100
}
