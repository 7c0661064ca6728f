package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLog_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		in      NewLog
		wantQty int
		wantErr bool
	}{
		{"default quantity", NewLog{ItemName: "Glaze"}, 1, false},
		{"explicit quantity", NewLog{ItemName: "Glaze", Quantity: 4}, 4, false},
		{"negative quantity", NewLog{ItemName: "Glaze", Quantity: -2}, 0, true},
		{"missing name", NewLog{ItemName: "  ", Quantity: 1}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			err := in.Normalize()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantQty, in.Quantity)
		})
	}
}

func TestNewLog_Build(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	l := NewLog{ItemName: "Glaze", ItemID: "i1", Quantity: 2}.Build("u1", at)
	require.NotNil(t, l.ItemID)
	assert.Equal(t, "i1", *l.ItemID)
	assert.Equal(t, at, l.Timestamp)

	l = NewLog{ItemName: "Glaze", Quantity: 1}.Build("u2", at)
	assert.Nil(t, l.ItemID)
}
