package schema

// CatalogSeasonTable represents the 'season' table
type CatalogSeasonTable struct {
	Table        string
	ID           string
	SeriesID     string
	SeasonNumber string
}

// CatalogSeason is the schema definition for season
var CatalogSeason = CatalogSeasonTable{
	Table:        "season",
	ID:           "id",
	SeriesID:     "seriesid",
	SeasonNumber: "seasonnumber",
}

// Columns returns all standard column names
func (t CatalogSeasonTable) Columns() []string {
	return []string{t.ID, t.SeriesID, t.SeasonNumber}
}
