package inject

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// toggleFunc sends a single key event; down is false for a release
type toggleFunc func(key string, down bool) error

// pressCombination holds every key down in order, then releases in reverse.
// When a press fails, keys already held are released before returning.
func pressCombination(keys []string, toggle toggleFunc, delay time.Duration) error {
	held := make([]string, 0, len(keys))

	release := func() error {
		var firstErr error
		for i := len(held) - 1; i >= 0; i-- {
			if err := toggle(held[i], false); err != nil && firstErr == nil {
				firstErr = err
			}
			pause(delay)
		}
		return firstErr
	}

	for _, k := range keys {
		if err := toggle(k, true); err != nil {
			release()
			return err
		}
		held = append(held, k)
		pause(delay)
	}

	return release()
}

func pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// robotgoKeyNames maps DOM-style key names (shiftleft, altleft) onto robotgo's names
var robotgoKeyNames = map[string]string{
	"shiftleft":  "lshift",
	"shiftright": "rshift",
	"altleft":    "lalt",
	"altright":   "ralt",
	"option":     "alt",
	"ctrlleft":   "lctrl",
	"ctrlright":  "rctrl",
	"control":    "ctrl",
	"win":        "cmd",
	"winleft":    "lcmd",
	"winright":   "rcmd",
	"command":    "cmd",
	"escape":     "esc",
	"return":     "enter",
	"pgup":       "pageup",
	"pgdn":       "pagedown",
	"del":        "delete",
	"spacebar":   "space",
}

// robotgoKnownKeys lists the multi-character names robotgo resolves to a key code.
// robotgo sends key code 0 for anything else instead of failing.
var robotgoKnownKeys = map[string]bool{
	"backspace": true, "delete": true, "enter": true, "tab": true, "esc": true, "escape": true,
	"up": true, "down": true, "right": true, "left": true,
	"home": true, "end": true, "pageup": true, "pagedown": true, "insert": true, "menu": true,
	"cmd": true, "lcmd": true, "rcmd": true, "command": true,
	"alt": true, "lalt": true, "ralt": true,
	"ctrl": true, "lctrl": true, "rctrl": true, "control": true,
	"shift": true, "lshift": true, "rshift": true,
	"capslock": true, "space": true, "print": true, "printscreen": true,
	"num_lock": true, "num_enter": true, "num_clear": true,
	"audio_mute": true, "audio_vol_down": true, "audio_vol_up": true,
	"audio_play": true, "audio_stop": true, "audio_pause": true,
	"audio_prev": true, "audio_next": true,
}

func init() {
	for i := 1; i <= 24; i++ {
		robotgoKnownKeys[fmt.Sprintf("f%d", i)] = true
	}
	for i := 0; i <= 9; i++ {
		robotgoKnownKeys[fmt.Sprintf("num%d", i)] = true
	}
}

// robotgoKeyName translates a key token for robotgo. Names are lower-cased because
// robotgo adds shift for an upper-case first rune.
func robotgoKeyName(key string) string {
	lower := strings.ToLower(key)
	if name, ok := robotgoKeyNames[lower]; ok {
		return name
	}
	return lower
}

// resolveRobotgoKey translates key and rejects names robotgo would silently drop.
// Any single character is accepted; robotgo maps it by rune.
func resolveRobotgoKey(key string) (string, error) {
	name := robotgoKeyName(key)
	if utf8.RuneCountInString(name) == 1 || robotgoKnownKeys[name] {
		return name, nil
	}
	return "", injectionErrorf(key, "unknown key: %s", key)
}

// resolveRobotgoKeys translates a whole sequence before anything is pressed
func resolveRobotgoKeys(keys KeySequence) ([]string, error) {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		name, err := resolveRobotgoKey(k)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
