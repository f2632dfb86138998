package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"one MiB exact", 1048576, "1 MiB"},
		{"one and a half GiB", 1610612736, "1.50 GiB"},
		{"two GiB exact", 2147483648, "2 GiB"},
		{"zero", 0, "0 MiB"},
		{"fractional MiB", 1572864, "1.50 MiB"},
		{"just under a GiB stays MiB", 1073741823, "1024.00 MiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatBytes(tt.n))
		})
	}
}

func TestRender_RoundingDivergesBetweenTextAndTooltip(t *testing.T) {
	s := NewState()
	s.Pending["D1"] = map[string]Progress{
		"F1": {Completion: 42.7, NeedBytes: 1048576},
	}

	snap := Render(s)

	// bar text floors, tooltip rounds
	assert.Contains(t, snap.Text, " 42%/1 MiB")
	assert.Contains(t, snap.Tooltip, "(43%, 1 MiB)")
}

func TestRender_SingleEntryExactOutput(t *testing.T) {
	s := NewState()
	s.Devices["D1"] = "Desktop"
	s.Folders["F1"] = "Music"
	s.Pending["D1"] = map[string]Progress{
		"F1": {Completion: 42.7, NeedBytes: 1048576},
	}

	snap := Render(s)

	assert.Equal(t, " 42%/1 MiB", snap.Text)
	assert.Equal(t, "Desktop:   Music      (43%, 1 MiB)", snap.Tooltip)
}

func TestRender_UnknownIDsDisplayAsThemselves(t *testing.T) {
	s := NewState()
	s.Pending["DEV-RAW"] = map[string]Progress{
		"folder-raw": {Completion: 10.0, NeedBytes: 1048576},
	}

	snap := Render(s)

	assert.Contains(t, snap.Tooltip, "DEV-RAW:")
	assert.Contains(t, snap.Tooltip, "folder-raw")
}

func TestRender_EmptyAndBlankRowsRenderNothing(t *testing.T) {
	s := NewState()
	assert.Equal(t, Snapshot{}, Render(s))

	// a device row with zero folders is never displayed
	s.Pending["D1"] = map[string]Progress{}
	assert.Equal(t, Snapshot{}, Render(s))
}

func TestRender_MultipleEntriesJoined(t *testing.T) {
	s := NewState()
	s.Pending["D1"] = map[string]Progress{
		"F1": {Completion: 10.0, NeedBytes: 1048576},
		"F2": {Completion: 20.0, NeedBytes: 2097152},
	}

	snap := Render(s)

	assert.Contains(t, snap.Text, " | ")
	assert.Contains(t, snap.Tooltip, "\n")
}
