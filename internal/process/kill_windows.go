//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// killTree runs taskkill with /T so Chrome's renderer children go too.
func killTree(pid int) {
	// Best-effort; launcher.Kill() runs afterwards as a fallback.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
