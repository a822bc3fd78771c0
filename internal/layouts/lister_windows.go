//go:build windows

package layouts

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procGetKeyboardLayoutList = user32.NewProc("GetKeyboardLayoutList")
)

// SystemLister reads the layout list from user32
type SystemLister struct{}

// NewSystemLister creates the Win32 layout lister
func NewSystemLister() Lister {
	return &SystemLister{}
}

// List calls GetKeyboardLayoutList twice: once for the count, once to fill the buffer
func (l *SystemLister) List() ([]uint32, error) {
	if err := procGetKeyboardLayoutList.Find(); err != nil {
		return nil, fmt.Errorf("GetKeyboardLayoutList unavailable: %w", err)
	}

	n, _, err := procGetKeyboardLayoutList.Call(0, 0)
	if n == 0 {
		return nil, fmt.Errorf("GetKeyboardLayoutList failed: %w", err)
	}

	handles := make([]uintptr, n)
	got, _, err := procGetKeyboardLayoutList.Call(n, uintptr(unsafe.Pointer(&handles[0])))
	if got == 0 {
		return nil, fmt.Errorf("GetKeyboardLayoutList failed: %w", err)
	}

	// HKL is pointer sized but only the low 32 bits carry the layout
	hkls := make([]uint32, 0, got)
	for _, h := range handles[:got] {
		hkls = append(hkls, uint32(h))
	}
	return hkls, nil
}
