package system

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Returns the command that opens url in the default browser on the given OS.
func browserCommand(goos string, url string) (*exec.Cmd, error) {
	switch goos {
	case "linux":
		return exec.Command("xdg-open", url), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	case "darwin":
		return exec.Command("open", url), nil
	default:
		return nil, fmt.Errorf("unsupported platform %q encountered while attempting to open browser", goos)
	}
}

// Open the default browser with the given URL.
func OpenBrowser(url string) error {
	cmd, err := browserCommand(runtime.GOOS, url)
	if err != nil {
		return err
	}
	return cmd.Start()
}
