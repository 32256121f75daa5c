package airtable

import (
	"context"
)

// Record is one row of a remote table. Fields carries the raw column values
// exactly as the store returned them; normalization happens downstream.
type Record struct {
	ID          string                 `json:"id"`
	Fields      map[string]interface{} `json:"fields"`
	CreatedTime string                 `json:"createdTime,omitempty"`
}

// SortField is one sort clause of a list call. Direction is "asc" or "desc".
type SortField struct {
	Field     string
	Direction string
}

// ListOptions narrows a list call. Zero values are omitted from the request
// so the store applies its own defaults.
type ListOptions struct {
	FilterByFormula string
	Sort            []SortField
	MaxRecords      int
	View            string
}

type Store interface {
	List(ctx context.Context, table string, opts ListOptions) ([]Record, error)
	// Find returns (nil, nil) when the record does not exist. A missing
	// record is a valid empty result, not a failure.
	Find(ctx context.Context, table, id string) (*Record, error)
}
