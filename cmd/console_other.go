//go:build !windows

package cmd

// attachParentConsole is a no-op: only Windows GUI-subsystem builds start
// without a console.
func attachParentConsole() {}
