//go:build !cgo

package inject

import "time"

// RobotgoInjector is unavailable without cgo
type RobotgoInjector struct{}

func NewRobotgoInjector(keyDelay time.Duration) *RobotgoInjector {
	return &RobotgoInjector{}
}

func (r *RobotgoInjector) PressCombination(keys KeySequence) error {
	return &InjectionError{Message: "robotgo backend requires a cgo build"}
}
