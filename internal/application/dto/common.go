package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP. Para errores del libro de stock, Lot
// identifica el lote y la regla violada.
type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Lot     *LotErrorInfo `json:"lot,omitempty"`
}

// LotErrorInfo identifica el lote ofendido en un error de stock.
type LotErrorInfo struct {
	LotID      string `json:"lot_id,omitempty"`
	ProductID  string `json:"product_id,omitempty"`
	SupplierID string `json:"supplier_id,omitempty"`
	Price      string `json:"price,omitempty"`
}
