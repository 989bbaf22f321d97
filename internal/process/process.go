// Package process terminates the Chrome process tree left behind by the renderer.
package process

// KillTree kills the process identified by pid together with its children.
// Non-positive PIDs are ignored: on Unix a zero PID would signal the caller's
// own process group.
func KillTree(pid int) {
	if pid <= 0 {
		return
	}
	killTree(pid)
}
