package platform

import "strings"

// AutostartName is the value name used under the per-user Run key.
const AutostartName = "Blanqr"

// AutostartCommand quotes exe for a Run key entry so paths with spaces work.
func AutostartCommand(exe string) string {
	return `"` + strings.Trim(exe, `"`) + `"`
}
