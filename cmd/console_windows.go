//go:build windows

package cmd

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/mj1618/blanqr/internal/output"
)

const attachParentProcess = 0xFFFFFFFF

var procAttachConsole = windows.NewLazySystemDLL("kernel32.dll").NewProc("AttachConsole")

// attachParentConsole connects a windowsgui build to the console it was
// started from. Redirected output already has a handle and is left alone.
func attachParentConsole() {
	if h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE); err == nil && h != 0 && h != windows.InvalidHandle {
		return
	}
	if r, _, _ := procAttachConsole.Call(attachParentProcess); r == 0 {
		return
	}
	con, err := os.OpenFile("CONOUT$", os.O_WRONLY, 0)
	if err != nil {
		return
	}
	os.Stdout = con
	os.Stderr = con
	output.Out = con
}
