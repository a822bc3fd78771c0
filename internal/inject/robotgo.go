//go:build cgo

package inject

import (
	"time"

	"github.com/go-vgo/robotgo"
)

// RobotgoInjector sends key events through robotgo
type RobotgoInjector struct {
	keyDelay time.Duration
}

// NewRobotgoInjector creates a robotgo injector that waits keyDelay between key events
func NewRobotgoInjector(keyDelay time.Duration) *RobotgoInjector {
	return &RobotgoInjector{keyDelay: keyDelay}
}

// PressCombination presses keys as one shortcut
func (r *RobotgoInjector) PressCombination(keys KeySequence) error {
	if len(keys) == 0 {
		return &InjectionError{Message: ErrNoKeys.Error()}
	}

	names, err := resolveRobotgoKeys(keys)
	if err != nil {
		return err
	}

	return pressCombination(names, func(key string, down bool) error {
		dir := "up"
		if down {
			dir = "down"
		}
		if err := robotgo.KeyToggle(key, dir); err != nil {
			return injectionErrorf(key, "failed to press %q: %v", key, err)
		}
		return nil
	}, r.keyDelay)
}
