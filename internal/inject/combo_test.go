package inject

import (
	"errors"
	"reflect"
	"testing"
)

type toggleRecorder struct {
	events []string
	failOn string
}

func (r *toggleRecorder) toggle(key string, down bool) error {
	if down && key == r.failOn {
		return errors.New("bad key")
	}
	dir := "up"
	if down {
		dir = "down"
	}
	r.events = append(r.events, key+":"+dir)
	return nil
}

func TestPressCombinationOrder(t *testing.T) {
	rec := &toggleRecorder{}
	if err := pressCombination([]string{"alt", "shiftleft", "1"}, rec.toggle, 0); err != nil {
		t.Fatalf("pressCombination returned error: %v", err)
	}

	expected := []string{"alt:down", "shiftleft:down", "1:down", "1:up", "shiftleft:up", "alt:up"}
	if !reflect.DeepEqual(rec.events, expected) {
		t.Errorf("Expected %v, got %v", expected, rec.events)
	}
}

func TestPressCombinationReleasesOnFailure(t *testing.T) {
	rec := &toggleRecorder{failOn: "nope"}
	err := pressCombination([]string{"ctrl", "shift", "nope", "c"}, rec.toggle, 0)
	if err == nil || err.Error() != "bad key" {
		t.Fatalf("Expected bad key error, got %v", err)
	}

	expected := []string{"ctrl:down", "shift:down", "shift:up", "ctrl:up"}
	if !reflect.DeepEqual(rec.events, expected) {
		t.Errorf("Expected %v, got %v", expected, rec.events)
	}
}

func TestRobotgoKeyName(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"shiftleft", "lshift"},
		{"ShiftLeft", "lshift"},
		{"altleft", "lalt"},
		{"ctrlright", "rctrl"},
		{"win", "cmd"},
		{"escape", "esc"},
		{"return", "enter"},
		{"alt", "alt"},
		{"ALT", "alt"},
		{"Q", "q"},
		{"1", "1"},
		{"invalidkey", "invalidkey"},
	}

	for _, test := range tests {
		if got := robotgoKeyName(test.key); got != test.expected {
			t.Errorf("robotgoKeyName(%q)=%q, want %q", test.key, got, test.expected)
		}
	}
}

func TestResolveRobotgoKeys(t *testing.T) {
	tests := []struct {
		name      string
		keys      KeySequence
		expected  []string
		wantError string
	}{
		{"layout switch", KeySequence{"alt", "shiftleft", "1"}, []string{"alt", "lshift", "1"}, ""},
		{"upper case", KeySequence{"CTRL", "Shift", "F5"}, []string{"ctrl", "shift", "f5"}, ""},
		{"named keys", KeySequence{"win", "space"}, []string{"cmd", "space"}, ""},
		{"punctuation", KeySequence{"ctrl", "/"}, []string{"ctrl", "/"}, ""},
		{"unknown name", KeySequence{"ctrl", "invalidkey"}, nil, "unknown key: invalidkey"},
		{"empty token", KeySequence{"ctrl", "", "c"}, nil, "unknown key: "},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			names, err := resolveRobotgoKeys(test.keys)
			if test.wantError != "" {
				var injErr *InjectionError
				if !errors.As(err, &injErr) || injErr.Message != test.wantError {
					t.Fatalf("Expected InjectionError %q, got %v", test.wantError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveRobotgoKeys(%q) returned error: %v", test.keys, err)
			}
			if !reflect.DeepEqual(names, test.expected) {
				t.Errorf("Expected %v, got %v", test.expected, names)
			}
		})
	}
}
