//go:build windows || (linux && cgo)

package inject

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/micmonay/keybd_event"
)

// modifier flags understood by KeyBonding
type modifiers struct {
	alt   bool
	shift bool
	ctrl  bool
}

// KeyMapping resolves key names to keybd_event codes
type KeyMapping struct {
	keyMap map[string]int
}

// NewKeyMapping creates the key name table
func NewKeyMapping() *KeyMapping {
	km := &KeyMapping{keyMap: make(map[string]int)}
	km.initializeKeyMap()
	return km
}

func (km *KeyMapping) initializeKeyMap() {
	letters := []int{
		keybd_event.VK_A, keybd_event.VK_B, keybd_event.VK_C, keybd_event.VK_D, keybd_event.VK_E,
		keybd_event.VK_F, keybd_event.VK_G, keybd_event.VK_H, keybd_event.VK_I, keybd_event.VK_J,
		keybd_event.VK_K, keybd_event.VK_L, keybd_event.VK_M, keybd_event.VK_N, keybd_event.VK_O,
		keybd_event.VK_P, keybd_event.VK_Q, keybd_event.VK_R, keybd_event.VK_S, keybd_event.VK_T,
		keybd_event.VK_U, keybd_event.VK_V, keybd_event.VK_W, keybd_event.VK_X, keybd_event.VK_Y,
		keybd_event.VK_Z,
	}
	for i, code := range letters {
		km.keyMap[string(rune('a'+i))] = code
	}

	digits := []int{
		keybd_event.VK_0, keybd_event.VK_1, keybd_event.VK_2, keybd_event.VK_3, keybd_event.VK_4,
		keybd_event.VK_5, keybd_event.VK_6, keybd_event.VK_7, keybd_event.VK_8, keybd_event.VK_9,
	}
	for i, code := range digits {
		km.keyMap[string(rune('0'+i))] = code
	}

	functionKeys := []int{
		keybd_event.VK_F1, keybd_event.VK_F2, keybd_event.VK_F3, keybd_event.VK_F4,
		keybd_event.VK_F5, keybd_event.VK_F6, keybd_event.VK_F7, keybd_event.VK_F8,
		keybd_event.VK_F9, keybd_event.VK_F10, keybd_event.VK_F11, keybd_event.VK_F12,
	}
	for i, code := range functionKeys {
		km.keyMap[fmt.Sprintf("f%d", i+1)] = code
	}

	km.keyMap["esc"] = keybd_event.VK_ESC
	km.keyMap["escape"] = keybd_event.VK_ESC
	km.keyMap["backspace"] = keybd_event.VK_BACKSPACE
	km.keyMap["tab"] = keybd_event.VK_TAB
	km.keyMap["enter"] = keybd_event.VK_ENTER
	km.keyMap["return"] = keybd_event.VK_ENTER
	km.keyMap["space"] = keybd_event.VK_SPACE
	km.keyMap["capslock"] = keybd_event.VK_CAPSLOCK
}

// GetKeyCode returns the code for a key name
func (km *KeyMapping) GetKeyCode(keyName string) (int, bool) {
	code, exists := km.keyMap[strings.ToLower(keyName)]
	return code, exists
}

// resolve splits a sequence into modifier flags and key codes, keeping key order
func (km *KeyMapping) resolve(keys KeySequence) (modifiers, []int, error) {
	var mods modifiers
	codes := make([]int, 0, len(keys))

	for _, k := range keys {
		switch strings.ToLower(k) {
		case "alt", "altleft", "altright", "lalt", "ralt", "option":
			mods.alt = true
		case "shift", "shiftleft", "shiftright", "lshift", "rshift":
			mods.shift = true
		case "ctrl", "control", "ctrlleft", "ctrlright", "lctrl", "rctrl":
			mods.ctrl = true
		default:
			code, ok := km.GetKeyCode(k)
			if !ok {
				return mods, nil, injectionErrorf(k, "unknown key: %s", k)
			}
			codes = append(codes, code)
		}
	}

	return mods, codes, nil
}

// KeybdInjector sends key combinations through keybd_event
type KeybdInjector struct {
	kb      keybd_event.KeyBonding
	mapping *KeyMapping
	mu      sync.Mutex
}

// NewKeybdInjector initializes the keyboard binding
func NewKeybdInjector() (*KeybdInjector, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize keyboard binding: %w", err)
	}

	// uinput needs time to register the virtual device
	if runtime.GOOS == "linux" {
		time.Sleep(2 * time.Second)
	}

	return &KeybdInjector{kb: kb, mapping: NewKeyMapping()}, nil
}

// PressCombination presses the modifiers and keys together
func (k *KeybdInjector) PressCombination(keys KeySequence) error {
	mods, codes, err := k.mapping.resolve(keys)
	if err != nil {
		return err
	}

	// KeyBonding keeps state between launches
	k.mu.Lock()
	defer k.mu.Unlock()

	k.kb.HasALT(mods.alt)
	k.kb.HasSHIFT(mods.shift)
	k.kb.HasCTRL(mods.ctrl)
	k.kb.SetKeys(codes...)

	if err := k.kb.Launching(); err != nil {
		return injectionErrorf("", "failed to press %s: %v", keys, err)
	}
	return nil
}
