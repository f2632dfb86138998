package aggregator

import (
	"fmt"
	"math"
	"strings"
)

const (
	bytesInMiB = 1 << 20
	bytesInGiB = 1 << 30

	// Nerd-font "sync" glyph shown before each bar token.
	syncGlyph = ""
)

// Snapshot is what the status-bar host reads: one JSON object per line.
type Snapshot struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
}

// Render turns the pending table into the bar text and tooltip. Pure; entry
// order follows map iteration and is deliberately unspecified. Empty rows
// contribute nothing, and an empty table renders empty strings.
func Render(s *State) Snapshot {
	var tokens []string
	for _, folders := range s.Pending {
		for _, p := range folders {
			// Bar text truncates the percentage, the tooltip rounds it.
			tokens = append(tokens, fmt.Sprintf("%s %d%%/%s", syncGlyph, int(math.Floor(p.Completion)), formatBytes(p.NeedBytes)))
		}
	}

	var lines []string
	for device, folders := range s.Pending {
		for folder, p := range folders {
			lines = append(lines, fmt.Sprintf("%-10s %-10s (%.0f%%, %s)",
				s.DeviceName(device)+":", s.FolderName(folder), p.Completion, formatBytes(p.NeedBytes)))
		}
	}

	return Snapshot{
		Text:    strings.Join(tokens, " | "),
		Tooltip: strings.Join(lines, "\n"),
	}
}

// formatBytes prints values of a GiB and up in GiB, the rest in MiB. Whole
// values get no decimals, fractional ones two: 1536 MiB is "1.50 GiB",
// 2048 MiB is "2 GiB".
func formatBytes(n int64) string {
	if n >= bytesInGiB {
		return formatUnit(float64(n)/bytesInGiB, "GiB")
	}
	return formatUnit(float64(n)/bytesInMiB, "MiB")
}

func formatUnit(v float64, unit string) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f %s", v, unit)
	}
	return fmt.Sprintf("%.2f %s", v, unit)
}
