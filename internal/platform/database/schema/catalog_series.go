package schema

// CatalogSeriesTable represents the 'series' table
type CatalogSeriesTable struct {
	Table         string
	ID            string
	Title         string
	Image         string
	Type          string
	OverallRating string
	CreatedAt     string
}

// CatalogSeries is the schema definition for series
var CatalogSeries = CatalogSeriesTable{
	Table:         "series",
	ID:            "id",
	Title:         "title",
	Image:         "image",
	Type:          "type",
	OverallRating: "overallrating",
	CreatedAt:     "createdat",
}

// Columns returns all standard column names
func (t CatalogSeriesTable) Columns() []string {
	return []string{t.ID, t.Title, t.Image, t.Type, t.OverallRating, t.CreatedAt}
}
