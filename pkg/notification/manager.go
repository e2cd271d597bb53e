package notification

import (
	"fmt"
)

// NotificationSystem represents a delivery channel (e.g., email).
type NotificationSystem string

// NotificationType represents a kind of notification (e.g., "email_verification").
type NotificationType string

const (
	EmailSystem NotificationSystem = "email"

	EmailVerification NotificationType = "email_verification"
)

// NotificationManager manages notifiers and notification templates.
type NotificationManager struct {
	notifiers map[NotificationSystem]Notifier
	registry  map[NotificationType]map[NotificationSystem]NoticeTemplate
}

// NewNotificationManager creates and returns a new NotificationManager.
func NewNotificationManager() *NotificationManager {
	return &NotificationManager{
		notifiers: make(map[NotificationSystem]Notifier),
		registry:  make(map[NotificationType]map[NotificationSystem]NoticeTemplate),
	}
}

// RegisterNotifier registers a notifier for a specific system.
func (nm *NotificationManager) RegisterNotifier(system NotificationSystem, notifier Notifier) {
	nm.notifiers[system] = notifier
}

// RegisterNotification adds a notification template to the registry.
func (nm *NotificationManager) RegisterNotification(notifType NotificationType, system NotificationSystem, template NoticeTemplate) error {
	if notifType == "" || system == "" {
		return fmt.Errorf("invalid input: notification type and system cannot be empty")
	}

	if template.Subject == "" || (template.Text == "" && template.Html == "") {
		return fmt.Errorf("invalid template: subject and at least one of text or html are required")
	}

	if _, exists := nm.registry[notifType]; !exists {
		nm.registry[notifType] = make(map[NotificationSystem]NoticeTemplate)
	}

	nm.registry[notifType][system] = template
	return nil
}

// Send sends a notification using the specified system and type.
func (nm *NotificationManager) Send(notifType NotificationType, system NotificationSystem, notification NotificationData) error {
	systemTemplates, exists := nm.registry[notifType]
	if !exists {
		return fmt.Errorf("no templates registered for notification type: %s", notifType)
	}

	template, exists := systemTemplates[system]
	if !exists {
		return fmt.Errorf("no template registered for system: %s under notification type: %s", system, notifType)
	}

	notifier, exists := nm.notifiers[system]
	if !exists {
		return fmt.Errorf("no notifier registered for system: %s", system)
	}

	return notifier.Send(notifType, notification, template)
}
