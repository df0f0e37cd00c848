package schema

// CatalogEpisodeTable represents the 'episode' table
type CatalogEpisodeTable struct {
	Table         string
	ID            string
	SeasonID      string
	EpisodeNumber string
	Title         string
	Rating        string
}

// CatalogEpisode is the schema definition for episode
var CatalogEpisode = CatalogEpisodeTable{
	Table:         "episode",
	ID:            "id",
	SeasonID:      "seasonid",
	EpisodeNumber: "episodenumber",
	Title:         "title",
	Rating:        "rating",
}

// Columns returns all standard column names
func (t CatalogEpisodeTable) Columns() []string {
	return []string{t.ID, t.SeasonID, t.EpisodeNumber, t.Title, t.Rating}
}
