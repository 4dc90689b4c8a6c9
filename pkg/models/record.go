package models

import "encoding/json"

// UsersTable is the credential sheet. It is never touched by SYNC_DATA;
// every other configured table holds per-user item rows.
const UsersTable = "Users"

// Column layouts. Header cells sit at row 0 of every sheet; data starts
// at row 1.
var (
	UsersHeader = []string{"username", "password", "created_at"}
	DataHeader  = []string{"username", "item_id", "json_body", "updated_at"}
)

// Credential is one row of the Users sheet. Passwords are stored and
// compared as raw strings — a known weakness carried from the original
// contract, see DESIGN.md.
type Credential struct {
	Username  string `json:"username"`
	Password  string `json:"-"`
	CreatedAt string `json:"created_at"`
}

// TableRecord is one row of a data sheet: a single application item
// belonging to one user in one logical table. Body is kept opaque; the
// sync path never interprets item fields beyond "id".
type TableRecord struct {
	Table     string          `json:"table"`
	Username  string          `json:"username"`
	ItemID    string          `json:"item_id"`
	Body      json.RawMessage `json:"body"`
	UpdatedAt string          `json:"updated_at"`
}
