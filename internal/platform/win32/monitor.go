//go:build windows

package win32

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/blanqr/internal/model"
)

// monitorInfoEx is MONITORINFOEXW; lxn/win only declares MONITORINFO.
type monitorInfoEx struct {
	win.MONITORINFO
	SzDevice [32]uint16
}

var (
	enumMu       sync.Mutex
	enumList     []model.Monitor
	enumCallback = windows.NewCallback(enumMonitorProc)
)

// MonitorEnumerator lists displays with EnumDisplayMonitors.
type MonitorEnumerator struct{}

// NewMonitorEnumerator returns the Win32 monitor enumerator.
func NewMonitorEnumerator() MonitorEnumerator { return MonitorEnumerator{} }

func (MonitorEnumerator) Monitors() ([]model.Monitor, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumList = []model.Monitor{}
	r, _, err := procEnumDisplayMonitors.Call(0, 0, enumCallback, 0)
	if r == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", err)
	}
	list := enumList
	enumList = nil
	return list, nil
}

func enumMonitorProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	var info monitorInfoEx
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info.MONITORINFO) {
		return 1
	}
	rc := info.RcMonitor
	enumList = append(enumList, model.Monitor{
		Handle:     uintptr(hMonitor),
		Bounds:     model.Rect{Left: rc.Left, Top: rc.Top, Right: rc.Right, Bottom: rc.Bottom},
		Primary:    info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
		DeviceName: windows.UTF16ToString(info.SzDevice[:]),
	})
	return 1
}
