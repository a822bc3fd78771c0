package bridge

import (
	"fmt"
	"io"
	"net/http"

	"github.com/taglme/langswitch/internal/inject"
)

const (
	msgOK          = "OK"
	msgRunning     = "Server is running"
	msgMissingKeys = "Error: 'keys' parameter is missing"
	msgEmptyKeys   = "Error: 'keys' parameter has no key names"
	msgMissingName = "Error: 'name' parameter is missing"
)

// writeText writes body verbatim; http.Error would append a newline
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

// handlePressShortcut presses the keys in ?keys=alt,shiftleft,1
func (s *Server) handlePressShortcut(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("keys")
	if raw == "" {
		writeText(w, http.StatusBadRequest, msgMissingKeys)
		return
	}

	s.press(w, raw)
}

// handleSwitchLayout presses the shortcut configured for ?name=
func (s *Server) handleSwitchLayout(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeText(w, http.StatusBadRequest, msgMissingName)
		return
	}

	raw, ok := s.config.Shortcuts[name]
	if !ok {
		writeText(w, http.StatusNotFound, fmt.Sprintf("Error: unknown shortcut '%s'", name))
		return
	}

	s.press(w, raw)
}

func (s *Server) press(w http.ResponseWriter, raw string) {
	keys, err := inject.ParseKeySequence(raw)
	if err != nil {
		writeText(w, http.StatusBadRequest, msgEmptyKeys)
		return
	}

	if err := s.injector.PressCombination(keys); err != nil {
		s.logger.LogError("Error pressing shortcut", err, "keys", keys.String())
		s.notifier.NotifyError(fmt.Sprintf("Could not press %s: %v", keys, err))
		writeText(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.LogInfo("Successfully pressed shortcut: " + keys.String())
	s.notifier.NotifySuccess("Pressed " + keys.String())
	writeText(w, http.StatusOK, msgOK)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, msgRunning)
}
