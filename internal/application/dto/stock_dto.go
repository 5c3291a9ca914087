package dto

import "github.com/FLAVIOALFA/stockflow-admin/internal/domain/stock"

// StockPayload body para crear/editar un registro de stock individual.
type StockPayload struct {
	Quantity int    `json:"quantity"`
	Product  string `json:"product"`
	Branch   string `json:"branch"`
}

// BulkStockRequest body del cargador masivo: las filas del editor tal cual,
// incluidas las incompletas (se filtran y validan del lado del gateway).
type BulkStockRequest struct {
	BranchID string      `json:"branchId"`
	Rows     []stock.Row `json:"rows"`
}
