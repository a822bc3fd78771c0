package inject

import (
	"fmt"
	"time"
)

// Backend names accepted by New
const (
	BackendRobotgo    = "robotgo"
	BackendKeybdEvent = "keybd_event"
)

// Injector presses a key combination: every key goes down in order and comes back up in reverse
type Injector interface {
	PressCombination(keys KeySequence) error
}

// InjectionError reports a failed key press. Message is shown to the caller as-is.
type InjectionError struct {
	Key     string
	Message string
}

func (e *InjectionError) Error() string {
	return e.Message
}

func injectionErrorf(key, format string, args ...interface{}) *InjectionError {
	return &InjectionError{Key: key, Message: fmt.Sprintf(format, args...)}
}

// IsKnownBackend reports whether New accepts the backend name
func IsKnownBackend(backend string) bool {
	return backend == BackendRobotgo || backend == BackendKeybdEvent
}

// New creates the injector for the configured backend
func New(backend string, keyDelay time.Duration) (Injector, error) {
	switch backend {
	case BackendRobotgo, "":
		return NewRobotgoInjector(keyDelay), nil
	case BackendKeybdEvent:
		kb, err := NewKeybdInjector()
		if err != nil {
			return nil, err
		}
		return kb, nil
	default:
		return nil, fmt.Errorf("unknown injection backend: %s", backend)
	}
}
