package notify

import (
	"fmt"
	"log"

	"github.com/gen2brain/beeep"
	"github.com/skratchdot/open-golang/open"
)

// swapped out in tests
var (
	notifyFunc = func(title, message string) error { return beeep.Notify(title, message, "") }
	alertFunc  = func(title, message string) error { return beeep.Alert(title, message, "") }
	openFunc   = open.Run
)

const title = "Language Switcher"

// NotificationManager handles system notifications
type NotificationManager struct {
	enabled     bool
	showSuccess bool
	showErrors  bool
}

// NewNotificationManager creates a new notification manager
func NewNotificationManager(enabled, showSuccess, showErrors bool) *NotificationManager {
	return &NotificationManager{
		enabled:     enabled,
		showSuccess: showSuccess,
		showErrors:  showErrors,
	}
}

// NotifySuccess sends a success notification
func (nm *NotificationManager) NotifySuccess(message string) {
	if !nm.enabled || !nm.showSuccess {
		return
	}

	if err := notifyFunc(title, message); err != nil {
		log.Printf("Failed to send success notification: %v", err)
	}
}

// NotifyError sends an error alert
func (nm *NotificationManager) NotifyError(message string) {
	if !nm.enabled || !nm.showErrors {
		return
	}

	if err := alertFunc(title+" Error", message); err != nil {
		log.Printf("Failed to send error notification: %v", err)
	}
}

// OpenStatusPage opens the bridge status URL in the default browser
func OpenStatusPage(addr string) error {
	url := fmt.Sprintf("http://%s/status", addr)
	if err := openFunc(url); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
