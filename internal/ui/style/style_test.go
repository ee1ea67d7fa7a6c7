package style_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/kin/internal/ui/style"
)

func TestFill(t *testing.T) {
	tests := []struct {
		in   string
		want lipgloss.Color
	}{
		{in: "blue", want: "#0000FF"},
		{in: "Orange", want: "#FFA500"},
		{in: "pink", want: "#FFC0CB"},
		{in: "#123456", want: "#123456"},
		{in: "no-such-color", want: style.Slate},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, style.Fill(tt.in))
		})
	}
}
