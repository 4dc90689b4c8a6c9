package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Row is one persisted sheet row. Rows belonging to one sheet are ordered
// by insertion (ID ascending); the header occupies the first row of every
// sheet. Cells holds the row's cell values as a JSON array.
type Row struct {
	ID    uint           `gorm:"primaryKey;autoIncrement"`
	Sheet string         `gorm:"type:varchar(100);not null;index:idx_sheet_rows_sheet"`
	Cells datatypes.JSON `gorm:"type:jsonb"`
}

func (Row) TableName() string {
	return "sheet_rows"
}

// Store exposes the tabular storage as an ordered list of rows per sheet.
// Row 0 of a created sheet is its header; reading a sheet that was never
// created yields an empty result, not an error.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Row{}); err != nil {
		return nil, fmt.Errorf("migrate sheet rows: %w", err)
	}
	return &Store{db: db}, nil
}

// ReadAll returns every row of the sheet in insertion order, cells coerced
// to strings.
func (s *Store) ReadAll(ctx context.Context, sheet string) ([][]string, error) {
	var rows []Row
	err := s.db.WithContext(ctx).
		Where("sheet = ?", sheet).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells, err := decodeCells(r.Cells)
		if err != nil {
			return nil, fmt.Errorf("decode row %d of sheet %s: %w", r.ID, sheet, err)
		}
		out = append(out, cells)
	}
	return out, nil
}

// AppendRow adds one row after the current last row of the sheet.
func (s *Store) AppendRow(ctx context.Context, sheet string, cells []string) error {
	encoded, err := encodeCells(cells)
	if err != nil {
		return err
	}
	row := Row{Sheet: sheet, Cells: encoded}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("append to sheet %s: %w", sheet, err)
	}
	return nil
}

// DeleteRow removes the row at the given index (0 = header). Indices of
// rows above the deleted one shift down by one, so callers deleting
// multiple rows must walk indices in reverse.
func (s *Store) DeleteRow(ctx context.Context, sheet string, index int) error {
	var ids []uint
	err := s.db.WithContext(ctx).
		Model(&Row{}).
		Where("sheet = ?", sheet).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return fmt.Errorf("list rows of sheet %s: %w", sheet, err)
	}
	if index < 0 || index >= len(ids) {
		return fmt.Errorf("sheet %s: row index %d out of range", sheet, index)
	}
	if err := s.db.WithContext(ctx).Delete(&Row{}, ids[index]).Error; err != nil {
		return fmt.Errorf("delete row %d of sheet %s: %w", index, sheet, err)
	}
	return nil
}

// WriteRange bulk-appends a contiguous block of rows after the current
// last row of the sheet.
func (s *Store) WriteRange(ctx context.Context, sheet string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	records := make([]Row, 0, len(rows))
	for _, cells := range rows {
		encoded, err := encodeCells(cells)
		if err != nil {
			return err
		}
		records = append(records, Row{Sheet: sheet, Cells: encoded})
	}
	if err := s.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("write range to sheet %s: %w", sheet, err)
	}
	return nil
}

// GetOrCreate lazily creates the sheet by writing its header row once.
func (s *Store) GetOrCreate(ctx context.Context, sheet string, header []string) error {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&Row{}).
		Where("sheet = ?", sheet).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("count rows of sheet %s: %w", sheet, err)
	}
	if count > 0 {
		return nil
	}
	return s.AppendRow(ctx, sheet, header)
}

func encodeCells(cells []string) (datatypes.JSON, error) {
	b, err := json.Marshal(cells)
	if err != nil {
		return nil, fmt.Errorf("encode cells: %w", err)
	}
	return datatypes.JSON(b), nil
}

// decodeCells accepts heterogeneous cell values. Our writers only store
// strings, but rows written by other tooling may carry JSON numbers or
// booleans; those are coerced so lookups compare string-to-string.
func decodeCells(raw datatypes.JSON) ([]string, error) {
	var values []any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = CellString(v)
	}
	return cells, nil
}

// CellString coerces a decoded JSON value to its string form. Numbers are
// rendered without a trailing ".0" so a numeric-looking username stored as
// a number still matches its string query.
func CellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}
