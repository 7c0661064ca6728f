package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate(t *testing.T) {
	tests := []struct {
		name   string
		pin    string
		input  string
		expect bool
	}{
		{"default pin", "", "1234", true},
		{"default pin rejects other", "", "0000", false},
		{"configured pin", "9876", "9876", true},
		{"configured pin ignores default", "9876", "1234", false},
		{"empty input", "9876", "", false},
		{"no trimming", "9876", " 9876", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, NewGate(tt.pin).Validate(tt.input))
		})
	}
}
