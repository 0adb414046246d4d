package entity

// CatalogRow is one semi-structured row of the merchant's product catalog.
// Description carries the product name plus the option group text, newline-joined,
// exactly as the catalog source hands it over.
type CatalogRow struct {
	SKU         string `json:"sku"`
	SystemCode  string `json:"system_code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
	URL         string `json:"url"`
}

// DedupeKey identifies a product across tiers: SKU first, then URL, then name.
func (r CatalogRow) DedupeKey() string {
	if r.SKU != "" {
		return r.SKU
	}
	if r.URL != "" {
		return r.URL
	}
	return r.Name
}
