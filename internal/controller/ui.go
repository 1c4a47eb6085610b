// Package controller provides output adapters for displaying antinode scan results.
package controller

import (
	m "github.com/mouse-blink/antinode/internal/model"
)

// UI defines the interface for displaying scan results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayParse(stats m.ParseStats)
	DisplayResults(results []m.ScanResult, err error) error
	DisplayMap(view m.AntinodeMap) error
}
