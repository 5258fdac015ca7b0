package transcript

// SearchRequest binds the search query string parameters
type SearchRequest struct {
	Query string `query:"query" validate:"required"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// DefaultSearchLimit applies when the caller omits limit.
const DefaultSearchLimit = 5
