package widgets

import (
	"log"
	"os/exec"
	"runtime"
)

// OpenURL hands the URL to the system browser.
func OpenURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("DEBUG: open url %s: %v", url, err)
	}
}
