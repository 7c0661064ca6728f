package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeLines_RoundTripsThroughOrder(t *testing.T) {
	lines := []Line{
		{ItemID: "i1", ItemName: "Dimension DP 840", GroupID: "g1", GroupName: "Primer"},
		{ItemID: "i2", ItemName: "Glaze", GroupID: "g2", GroupName: "Glaze"},
	}
	raw, err := EncodeLines(lines)
	require.NoError(t, err)
	assert.Contains(t, raw, `"itemName":"Dimension DP 840"`)
	assert.Contains(t, raw, `"groupName":"Primer"`)

	got, err := Order{Items: raw}.Lines()
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestOrder_LinesBadJSON(t *testing.T) {
	_, err := Order{Items: "not json"}.Lines()
	assert.Error(t, err)
}
