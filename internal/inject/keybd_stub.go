//go:build !windows && !(linux && cgo)

package inject

import (
	"fmt"
	"runtime"
)

// KeybdInjector is only available on Windows, and on Linux when built with cgo
type KeybdInjector struct{}

func NewKeybdInjector() (*KeybdInjector, error) {
	return nil, fmt.Errorf("keybd_event backend is not available in this build (%s)", runtime.GOOS)
}

func (k *KeybdInjector) PressCombination(keys KeySequence) error {
	return &InjectionError{Message: "keybd_event backend is not available in this build (" + runtime.GOOS + ")"}
}
