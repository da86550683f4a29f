package models

// ListFilter is what the API layer asks for. Services normalize it before
// handing it to a repository.
type ListFilter struct {
	Page   int
	Limit  int
	Search string
}

// PageFilter is a normalized list request as seen by repositories.
type PageFilter struct {
	Search string
	Skip   int
	Limit  int
}

type Pagination struct {
	Page       int
	PageSize   int
	TotalPage  int
	TotalCount int64
}
