package dto

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListQueryRequest is decoded from the query string of list endpoints.
type ListQueryRequest struct {
	Page     int    `schema:"page" validate:"gte=1"`
	PageSize int    `schema:"pageSize" validate:"gte=1,lte=100"`
	SortBy   string `schema:"sortBy" validate:"max=50"`
}

// NewListQueryRequest returns a request carrying the defaults used when a
// parameter is absent from the query string.
func NewListQueryRequest() ListQueryRequest {
	return ListQueryRequest{Page: DefaultPage, PageSize: DefaultPageSize}
}
