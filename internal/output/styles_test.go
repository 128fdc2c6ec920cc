package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantFG  lipgloss.Color
		wantDim bool
	}{
		{name: "created returns green", status: StatusCreated, wantFG: colorGreen},
		{name: "published returns green", status: StatusPublished, wantFG: colorGreen},
		{name: "modified returns yellow", status: StatusModified, wantFG: ColorYellow},
		{name: "removed returns red", status: StatusRemoved, wantFG: colorRed},
		{name: "skipped returns faint", status: StatusSkipped, wantDim: true},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := statusStyle(tt.status)
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
			if tt.wantDim {
				assert.True(t, style.GetFaint())
			}
		})
	}
}

func TestFormatModuleLine(t *testing.T) {
	line := FormatModuleLine("admin", "1.2.0", StatusPublished)
	assert.Contains(t, line, "admin@1.2.0")
	assert.Contains(t, line, StatusPublished)
	assert.True(t, strings.Index(line, "admin@1.2.0") < strings.Index(line, StatusPublished))
}

func TestFormatModuleLine_LongIdentifierKeepsGap(t *testing.T) {
	long := strings.Repeat("x", 60)
	line := FormatModuleLine(long, "1.0.0", StatusSkipped)
	assert.Contains(t, line, long+"@1.0.0")
	assert.Contains(t, line, StatusSkipped)
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("index written"), "✔")
	assert.Contains(t, FormatCheckmark("index written"), "index written")
}
