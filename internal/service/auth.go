package service

import (
	"context"
	"time"

	"datasync-service/internal/store"
	"datasync-service/pkg/models"
)

const (
	usersColUsername = 0
	usersColPassword = 1
)

// CredentialService owns the Users sheet. Credentials are created on
// register and never mutated or deleted afterwards.
type CredentialService struct {
	store *store.Store
}

func NewCredentialService(st *store.Store) *CredentialService {
	return &CredentialService{store: st}
}

// Register appends a credential row. The whole Users sheet is scanned for
// a case-sensitive username collision first. The password is persisted as
// a raw string — the sheet cells are JSON strings, so a numeric-looking
// password survives storage untouched.
func (s *CredentialService) Register(ctx context.Context, username, password string) error {
	if err := s.store.GetOrCreate(ctx, models.UsersTable, models.UsersHeader); err != nil {
		return err
	}
	rows, err := s.store.ReadAll(ctx, models.UsersTable)
	if err != nil {
		return err
	}
	for _, row := range rows[1:] {
		if len(row) > usersColUsername && row[usersColUsername] == username {
			return ErrDuplicateUser
		}
	}
	createdAt := time.Now().UTC().Format(time.RFC3339)
	return s.store.AppendRow(ctx, models.UsersTable, []string{username, password, createdAt})
}

// Authenticate scans the Users sheet linearly and succeeds only on an
// exact string match of both username and password. Cells are already
// string-coerced by the store, so a username stored as a bare number by
// outside tooling still matches its string form.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) error {
	rows, err := s.store.ReadAll(ctx, models.UsersTable)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if i == 0 || len(row) <= usersColPassword {
			continue // header or short row
		}
		if row[usersColUsername] == username && row[usersColPassword] == password {
			return nil
		}
	}
	return ErrInvalidCredentials
}
