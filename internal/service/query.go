package service

import (
	"context"
	"encoding/json"
	"log"

	"datasync-service/internal/store"
	"datasync-service/pkg/models"
)

// QueryService reads a user's items back out of every configured data
// sheet. It takes no lock, so results can reflect a concurrent sync
// mid-replace.
type QueryService struct {
	store  *store.Store
	tables []string
}

func NewQueryService(st *store.Store, tables []string) *QueryService {
	return &QueryService{store: st, tables: tables}
}

// UserData returns a table-name → item-list mapping covering every
// configured data table. Tables the user has no rows in map to an empty
// list. A row whose stored blob fails to deserialize is skipped so that
// one malformed record cannot abort the read of the valid ones.
func (s *QueryService) UserData(ctx context.Context, username string) (map[string][]models.Item, error) {
	out := make(map[string][]models.Item, len(s.tables))
	for _, table := range s.tables {
		items, err := s.tableItems(ctx, table, username)
		if err != nil {
			return nil, err
		}
		out[table] = items
	}
	return out, nil
}

func (s *QueryService) tableItems(ctx context.Context, table, username string) ([]models.Item, error) {
	rows, err := s.store.ReadAll(ctx, table)
	if err != nil {
		return nil, err
	}
	items := make([]models.Item, 0)
	for i, row := range rows {
		if i == 0 || len(row) <= dataColBody || row[dataColUsername] != username {
			continue
		}
		var item models.Item
		if err := json.Unmarshal([]byte(row[dataColBody]), &item); err != nil {
			log.Printf("⚠️ [QUERY] Skipping malformed row %d of %s for %q: %v", i, table, username, err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
