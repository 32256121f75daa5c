package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/autonomous-futures/catalog/internal/airtable"
)

// MockStore serves canned records per table and counts calls so tests can
// assert on caching and no-call behavior.
type MockStore struct {
	Records     map[string][]airtable.Record
	ListCalls   int
	FindCalls   int
	LastOptions map[string]airtable.ListOptions
	Err         error
}

func (m *MockStore) List(ctx context.Context, table string, opts airtable.ListOptions) ([]airtable.Record, error) {
	m.ListCalls++
	if m.LastOptions == nil {
		m.LastOptions = make(map[string]airtable.ListOptions)
	}
	m.LastOptions[table] = opts
	if m.Err != nil {
		return nil, m.Err
	}
	records := m.Records[table]
	if opts.MaxRecords > 0 && len(records) > opts.MaxRecords {
		records = records[:opts.MaxRecords]
	}
	return records, nil
}

func (m *MockStore) Find(ctx context.Context, table, id string) (*airtable.Record, error) {
	m.FindCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	for _, rec := range m.Records[table] {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func newTestCatalog(store airtable.Store) *Catalog {
	return New(store, zap.NewNop().Sugar())
}

func record(id string, fields map[string]interface{}) airtable.Record {
	return airtable.Record{ID: id, Fields: fields}
}
