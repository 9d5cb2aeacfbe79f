package model

// CatalogEntry mirrors one record of the catalog reference document.
type CatalogEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	SetupDate   string `json:"setupdate"`
}
