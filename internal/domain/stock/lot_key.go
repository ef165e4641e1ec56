package stock

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PricePrecision decimales con los que la base almacena precios (NUMERIC(12,2)).
// La identidad de un lote compara el precio exactamente a esta precisión.
const PricePrecision = 2

// LotKey identifica un lote de stock: mismo producto, mismo proveedor y mismo
// precio unitario. Dos eventos tocan el mismo lote si y solo si las tres
// componentes coinciden exactamente.
type LotKey struct {
	ProductID  string
	SupplierID string
	Price      decimal.Decimal
}

// ResolveLotKey deriva la clave de lote de un evento. Función pura: normaliza
// el precio a la precisión de la base y no consulta nada.
func ResolveLotKey(productID, supplierID string, price decimal.Decimal) LotKey {
	return LotKey{
		ProductID:  productID,
		SupplierID: supplierID,
		Price:      price.Round(PricePrecision),
	}
}

// Equal compara dos claves. El precio se compara por valor (100 == 100.00).
func (k LotKey) Equal(o LotKey) bool {
	return k.ProductID == o.ProductID &&
		k.SupplierID == o.SupplierID &&
		k.Price.Equal(o.Price)
}

// String representación para logs y mensajes de error.
func (k LotKey) String() string {
	return fmt.Sprintf("producto=%s proveedor=%s precio=%s", k.ProductID, k.SupplierID, k.Price.StringFixed(PricePrecision))
}
