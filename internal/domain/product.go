package domain

// Product is a CCTV equipment category that can be quoted.
type Product string

// The closed set of quotable products.
const (
	ProductCamera  Product = "Camera"
	ProductMonitor Product = "Monitor"
	ProductDVR     Product = "DVR"
)

// CatalogItem pairs a product with its list unit price.
type CatalogItem struct {
	Product   Product `json:"product"`
	UnitPrice float64 `json:"unitPrice"`
}

var catalog = []CatalogItem{
	{Product: ProductCamera, UnitPrice: 2500},
	{Product: ProductMonitor, UnitPrice: 4500},
	{Product: ProductDVR, UnitPrice: 3200},
}

// Products returns every quotable product in catalog order.
func Products() []Product {
	out := make([]Product, 0, len(catalog))
	for _, item := range catalog {
		out = append(out, item.Product)
	}

	return out
}

// Catalog returns a copy of the product list prices.
func Catalog() []CatalogItem {
	out := make([]CatalogItem, len(catalog))
	copy(out, catalog)

	return out
}

// ListPrice returns the catalog unit price for p.
func ListPrice(p Product) (float64, bool) {
	for _, item := range catalog {
		if item.Product == p {
			return item.UnitPrice, true
		}
	}

	return 0, false
}

// Valid reports whether p is a member of the product set. Matching is exact.
func (p Product) Valid() bool {
	_, ok := ListPrice(p)
	return ok
}

// ParseProduct converts s into a Product, failing for anything outside the set.
func ParseProduct(s string) (Product, error) {
	p := Product(s)
	if !p.Valid() {
		return "", NewValidationErrorWithValue("product", "must be one of Camera, Monitor, DVR", s)
	}

	return p, nil
}

// String implements fmt.Stringer.
func (p Product) String() string {
	return string(p)
}
