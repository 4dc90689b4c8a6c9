package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"datasync-service/internal/store"
	"datasync-service/pkg/models"
)

const (
	dataColUsername = 0
	dataColItemID   = 1
	dataColBody     = 2
)

// SyncService replaces a user's entire row-set in one data sheet per
// call. There is no update-in-place: existing rows are deleted, then the
// supplied items are re-inserted wholesale.
type SyncService struct {
	store *store.Store
}

func NewSyncService(st *store.Store) *SyncService {
	return &SyncService{store: st}
}

// SyncTable makes the sheet's rows for username equal exactly the given
// item list. An empty list is a pure deletion. Every item must carry an
// id; a missing id fails the call before anything is written.
//
// The delete phase and the insert phase are not atomic with respect to
// lock-free readers: a concurrent GET_DATA can observe the sheet between
// the two phases and see a transiently empty or partial row-set for this
// user. Writers are serialized by the coordinator's write lock, so the
// sheet itself is never corrupted.
func (s *SyncService) SyncTable(ctx context.Context, table, username string, items []models.Item) error {
	newRows := make([][]string, 0, len(items))
	updatedAt := time.Now().UTC().Format(time.RFC3339)
	for _, item := range items {
		id := store.CellString(item["id"])
		if id == "" {
			return fmt.Errorf("table %s: %w", table, ErrMissingItemID)
		}
		body, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("table %s: serialize item %s: %w", table, id, err)
		}
		newRows = append(newRows, []string{username, id, string(body), updatedAt})
	}

	if err := s.store.GetOrCreate(ctx, table, models.DataHeader); err != nil {
		return err
	}
	rows, err := s.store.ReadAll(ctx, table)
	if err != nil {
		return err
	}

	// Reverse order so pending indices stay valid as rows shift down.
	for i := len(rows) - 1; i >= 1; i-- {
		if len(rows[i]) <= dataColUsername || rows[i][dataColUsername] != username {
			continue
		}
		if err := s.store.DeleteRow(ctx, table, i); err != nil {
			return err
		}
	}

	return s.store.WriteRange(ctx, table, newRows)
}
