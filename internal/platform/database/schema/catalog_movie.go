package schema

// CatalogMovieTable represents the 'movie' table
type CatalogMovieTable struct {
	Table     string
	ID        string
	Title     string
	Image     string
	Rating    string
	CreatedAt string
}

// CatalogMovie is the schema definition for movie
var CatalogMovie = CatalogMovieTable{
	Table:     "movie",
	ID:        "id",
	Title:     "title",
	Image:     "image",
	Rating:    "rating",
	CreatedAt: "createdat",
}

// Columns returns all standard column names
func (t CatalogMovieTable) Columns() []string {
	return []string{t.ID, t.Title, t.Image, t.Rating, t.CreatedAt}
}
