package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Spok95/supplyhub/internal/domain/orders"
	"github.com/Spok95/supplyhub/internal/domain/usage"
)

func TestOrdersWorkbook(t *testing.T) {
	created := time.Date(2024, 4, 2, 15, 4, 0, 0, time.UTC)
	raw, err := orders.EncodeLines([]orders.Line{
		{ItemID: "i1", ItemName: "Dimension DP 840", GroupID: "g1", GroupName: "Primer"},
		{ItemID: "i2", ItemName: "Glaze", GroupID: "g2", GroupName: "Glaze"},
	})
	require.NoError(t, err)
	itemID := "i2"

	buf, err := OrdersWorkbook(
		[]orders.Order{
			{ID: "o1", Items: raw, Status: orders.StatusPending, CreatedAt: created},
			{ID: "o2", Items: "{broken", Status: orders.StatusPending, CreatedAt: created},
		},
		[]usage.Log{{ID: "u1", ItemName: "Glaze", ItemID: &itemID, Quantity: 2, Timestamp: created}},
		nil,
	)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Orders", "Usage"}, f.GetSheetList())

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"order_id", "created_at", "status", "group", "item", "item_id"}, rows[0])
	assert.Equal(t, []string{"o1", "2024-04-02 15:04", "pending", "Primer", "Dimension DP 840", "i1"}, rows[1])
	assert.Equal(t, "Glaze", rows[2][4])
	assert.Equal(t, "o2", rows[3][0])
	assert.Equal(t, "(unreadable items)", rows[3][4])

	urows, err := f.GetRows("Usage")
	require.NoError(t, err)
	require.Len(t, urows, 2)
	assert.Equal(t, []string{"2024-04-02 15:04", "Glaze", "i2", "2"}, urows[1])
}

func TestOrdersWorkbook_Empty(t *testing.T) {
	buf, err := OrdersWorkbook(nil, nil, time.UTC)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "orders_20240402_150405.xlsx", FileName(time.Date(2024, 4, 2, 15, 4, 5, 0, time.UTC)))
}
