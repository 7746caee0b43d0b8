package cli

import (
	"os/exec"
	"runtime"
)

// openFunc displays a written chart (override in tests).
var openFunc = openInViewer

// openInViewer hands path to the platform's default viewer without waiting
// for it to exit.
func openInViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default: // Linux and others
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
