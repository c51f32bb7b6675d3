package camara

// listEnvelope is the wrapper every collection endpoint returns.
type listEnvelope struct {
	Dados []map[string]any `json:"dados"`
	Links []Link           `json:"links,omitempty"`
}

// itemEnvelope is the wrapper single-resource endpoints return.
type itemEnvelope struct {
	Dados map[string]any `json:"dados"`
	Links []Link         `json:"links,omitempty"`
}

// Link is a HATEOAS navigation link.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// ListParams filters the proposition listing. Zero values fall back to the
// defaults the API itself documents (type PL, 100 items, id descending).
type ListParams struct {
	Types   []string // siglaTipo values, fetched one request each
	Year    int      // ano; 0 means no year filter
	Items   int      // itens per request
	OrderBy string   // ordenarPor
	Order   string   // ordem (ASC/DESC)
}
