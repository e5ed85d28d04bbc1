// internal/services/catalog.go
package services

import (
	"github.com/google/uuid"

	"github.com/foodnetwork/cfn-backend/internal/models"
)

// CatalogItem is the storefront view of a product: display-only fields that
// the frontend renders directly. The mapping is a pure transform over the
// stored product and carries no business state.
type CatalogItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Unit          string    `json:"unit"`
	Image         string    `json:"image"`
	Description   string    `json:"description"`
	InStock       bool      `json:"in_stock"`
	StockQuantity int       `json:"stock_quantity"`
	Popularity    int       `json:"popularity"`
	Tags          []string  `json:"tags"`
}

var categoryImages = map[string]string{
	"fruits":     "🍌",
	"vegetables": "🥕",
	"grains":     "🌾",
	"legumes":    "🫘",
	"nuts":       "🥜",
	"seeds":      "🌻",
	"oils":       "🫒",
	"spices":     "🌶️",
	"sweeteners": "🍯",
	"beverages":  "☕",
	"dairy":      "🥛",
	"pantry":     "🏺",
}

// ToCatalogItem maps a product to its storefront rendering. Popularity is a
// display heuristic derived from sales, clamped to [50, 95].
func ToCatalogItem(p *models.Product) CatalogItem {
	image, ok := categoryImages[p.Category]
	if !ok {
		image = categoryImages["pantry"]
	}

	unit := p.UnitSize
	if unit == "" {
		unit = "unit"
	}

	popularity := 100 - p.SoldUnits*2
	if popularity > 95 {
		popularity = 95
	}
	if popularity < 50 {
		popularity = 50
	}

	return CatalogItem{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.UnitPrice,
		Unit:          unit,
		Image:         image,
		Description:   p.Description,
		InStock:       p.CurrentStock > 0,
		StockQuantity: p.CurrentStock,
		Popularity:    popularity,
		Tags:          []string{p.Category, "bulk", "community"},
	}
}

// ToCatalog maps a product list for the storefront.
func ToCatalog(products []models.Product) []CatalogItem {
	items := make([]CatalogItem, 0, len(products))
	for i := range products {
		items = append(items, ToCatalogItem(&products[i]))
	}
	return items
}
