package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/supplyhub/internal/domain/orders"
)

var sampleLines = []orders.Line{
	{ItemID: "i1", ItemName: "Dimension DP 840", GroupID: "g1", GroupName: "Primer"},
	{ItemID: "i2", ItemName: "Glaze", GroupID: "g2", GroupName: "Glaze"},
	{ItemID: "i3", ItemName: "Bulldog", GroupID: "g1", GroupName: "Primer"},
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Primer - Bulldog", DisplayName("Primer", "Bulldog"))
	assert.Equal(t, "Glaze", DisplayName("Glaze", "Glaze"))
}

func TestSubject(t *testing.T) {
	assert.Equal(t,
		"Built Right Company Order #a1b2c3d4 - 3 items",
		Subject("Built Right Company", "a1b2c3d4-e5f6-7890-abcd-ef0123456789", 3))
	assert.Equal(t, "X Order #abc - 1 items", Subject("X", "abc", 1))
}

func TestGroupLines_FirstAppearanceOrder(t *testing.T) {
	secs := groupLines(sampleLines)
	require.Len(t, secs, 2)
	assert.Equal(t, "Primer", secs[0].Name)
	assert.Equal(t, []string{"Dimension DP 840", "Bulldog"}, secs[0].Items)
	assert.Equal(t, "Glaze", secs[1].Name)
}

func TestSummary(t *testing.T) {
	at := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	s := Summary(sampleLines, at)

	assert.True(t, strings.HasPrefix(s, "=== SUPPLY ORDER ===\n"))
	assert.Contains(t, s, "Date: 2024-06-01 14:30:00")
	assert.Contains(t, s, "Primer:\n  - Dimension DP 840\n  - Bulldog\n")
	assert.Contains(t, s, "Total items: 3")
	assert.Less(t, strings.Index(s, "Primer:"), strings.Index(s, "Glaze:"))
}

func TestRenderHTML(t *testing.T) {
	at := time.Date(2024, 6, 1, 14, 30, 0, 0, time.UTC)
	html, err := RenderHTML("Built Right Company", "order-1", sampleLines, at)
	require.NoError(t, err)

	assert.Contains(t, html, "Built Right Company Order")
	assert.Contains(t, html, "order-1")
	assert.Contains(t, html, "Primer - Dimension DP 840")
	assert.Contains(t, html, "Primer - Bulldog")
	assert.Contains(t, html, ">Glaze</span>")
	assert.NotContains(t, html, "Glaze - Glaze")
	assert.Contains(t, html, "Total Items: 3")
}

func TestRenderHTML_Escapes(t *testing.T) {
	lines := []orders.Line{{ItemID: "i", ItemName: "<b>x</b>", GroupID: "g", GroupName: "Wax & Grease"}}
	html, err := RenderHTML("Co", "o", lines, time.Now())
	require.NoError(t, err)

	assert.NotContains(t, html, "<b>x</b>")
	assert.Contains(t, html, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, html, "Wax &amp; Grease")
}

func TestRenderHTML_DoesNotMutateLines(t *testing.T) {
	in := append([]orders.Line(nil), sampleLines...)
	_, err := RenderHTML("Co", "o", in, time.Now())
	require.NoError(t, err)
	assert.Equal(t, sampleLines, in)
}
