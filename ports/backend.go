package ports

import (
	"context"

	"edudesk/domain/table"
)

// ListQuery carries the paging parameters forwarded to the backend's list
// endpoints.
type ListQuery struct {
	Page     int
	PageSize int
	// Params holds extra query-string filters passed through verbatim.
	Params map[string]string
}

// Pagination mirrors the backend's optional pagination block.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// ListResult is one page of records as returned by the backend.
type ListResult struct {
	Records    []table.Record
	Pagination *Pagination
}

// BackendPort is the console's only data source: the learning platform's
// REST API. Implementations interpret nothing beyond the success flag of
// the {success, data, pagination?} envelope; transport-level detail stays
// behind this boundary.
type BackendPort interface {
	// List reads one page of a resource collection.
	List(ctx context.Context, resource string, query ListQuery) (*ListResult, error)
	// FetchAll reads the complete record set behind a resource, walking
	// pages until exhausted. Used to back exports, which operate on the
	// unpaginated set.
	FetchAll(ctx context.Context, resource string, params map[string]string) ([]table.Record, error)
	// Create issues one create call. Bulk import dispatches these
	// concurrently with no ordering and no atomicity.
	Create(ctx context.Context, resource string, record table.Record) error
	// Update modifies one record by id.
	Update(ctx context.Context, resource, id string, record table.Record) error
	// Delete removes one record by id.
	Delete(ctx context.Context, resource, id string) error
}
