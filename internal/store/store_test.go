package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datasync-service/internal/store"
	"datasync-service/internal/testutil"
)

func TestReadAllMissingSheetIsEmpty(t *testing.T) {
	st, _ := testutil.OpenTestStore(t, "store_missing")
	ctx := context.Background()

	rows, err := st.ReadAll(ctx, "Nowhere")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestGetOrCreateWritesHeaderOnce(t *testing.T) {
	st, _ := testutil.OpenTestStore(t, "store_header")
	ctx := context.Background()
	header := []string{"username", "item_id", "json_body", "updated_at"}

	require.NoError(t, st.GetOrCreate(ctx, "Inventory", header))
	require.NoError(t, st.GetOrCreate(ctx, "Inventory", header))

	rows, err := st.ReadAll(ctx, "Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, header, rows[0])
}

func TestAppendAndReadAllPreservesOrder(t *testing.T) {
	st, _ := testutil.OpenTestStore(t, "store_append")
	ctx := context.Background()

	require.NoError(t, st.AppendRow(ctx, "Orders", []string{"h1", "h2"}))
	require.NoError(t, st.AppendRow(ctx, "Orders", []string{"amy", "o1"}))
	require.NoError(t, st.AppendRow(ctx, "Orders", []string{"bob", "o2"}))

	rows, err := st.ReadAll(ctx, "Orders")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "amy", rows[1][0])
	assert.Equal(t, "bob", rows[2][0])
}

func TestDeleteRowShiftsLaterIndices(t *testing.T) {
	st, _ := testutil.OpenTestStore(t, "store_delete")
	ctx := context.Background()

	for _, cells := range [][]string{{"header"}, {"a"}, {"b"}, {"c"}} {
		require.NoError(t, st.AppendRow(ctx, "Menu", cells))
	}

	require.NoError(t, st.DeleteRow(ctx, "Menu", 2))

	rows, err := st.ReadAll(ctx, "Menu")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "a", rows[1][0])
	assert.Equal(t, "c", rows[2][0])
}

func TestDeleteRowOutOfRange(t *testing.T) {
	st, _ := testutil.OpenTestStore(t, "store_oob")
	ctx := context.Background()

	require.NoError(t, st.AppendRow(ctx, "Menu", []string{"header"}))

	assert.Error(t, st.DeleteRow(ctx, "Menu", 5))
	assert.Error(t, st.DeleteRow(ctx, "Menu", -1))
}

func TestWriteRangeAppendsContiguously(t *testing.T) {
	st, _ := testutil.OpenTestStore(t, "store_range")
	ctx := context.Background()

	require.NoError(t, st.AppendRow(ctx, "Inventory", []string{"header"}))
	require.NoError(t, st.WriteRange(ctx, "Inventory", [][]string{
		{"amy", "x1"},
		{"amy", "x2"},
	}))
	require.NoError(t, st.WriteRange(ctx, "Inventory", nil))

	rows, err := st.ReadAll(ctx, "Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "x1", rows[1][1])
	assert.Equal(t, "x2", rows[2][1])
}

func TestSheetsAreIsolated(t *testing.T) {
	st, _ := testutil.OpenTestStore(t, "store_isolated")
	ctx := context.Background()

	require.NoError(t, st.AppendRow(ctx, "Inventory", []string{"inv"}))
	require.NoError(t, st.AppendRow(ctx, "Orders", []string{"ord"}))

	rows, err := st.ReadAll(ctx, "Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "inv", rows[0][0])
}

func TestCellString(t *testing.T) {
	assert.Equal(t, "hello", store.CellString("hello"))
	assert.Equal(t, "12345", store.CellString(float64(12345)))
	assert.Equal(t, "1.5", store.CellString(1.5))
	assert.Equal(t, "true", store.CellString(true))
	assert.Equal(t, "", store.CellString(nil))
}
