package notification

// NotificationData carries the recipient and template data for one message.
type NotificationData struct {
	To   string            // Recipient identifier (e.g., email address)
	Data map[string]string // Template variables (e.g., verification link)
}

// NoticeTemplate holds the subject and body templates for a notification.
type NoticeTemplate struct {
	Subject string
	Text    string
	Html    string
}

type Notifier interface {
	Send(notifType NotificationType, notification NotificationData, template NoticeTemplate) error
}
