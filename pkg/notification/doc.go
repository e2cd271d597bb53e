// Package notification provides outbound message delivery for simple-contacts.
//
// A NotificationManager holds one Notifier per delivery system and a registry
// of templates keyed by notification type. Callers dispatch by type and
// system; the notifier renders the registered template with the per-message
// data and performs delivery.
//
// # Basic Usage
//
//	nm, err := notification.NewNotificationManagerWithOptions(
//		notification.WithSMTP(notification.SMTPConfig{
//			Host: "smtp.example.com",
//			Port: 587,
//			From: "noreply@example.com",
//		}),
//		notification.WithDefaultTemplates(),
//	)
//	if err != nil {
//		// handle error
//	}
//
//	err = nm.Send(notification.EmailVerification, notification.EmailSystem, notification.NotificationData{
//		To: "user@example.com",
//		Data: map[string]string{
//			"VerificationLink": "https://app.example.com/api/users/verify/<token>",
//			"ExpiryHours":      "1",
//		},
//	})
//
// Email delivery uses SMTP via github.com/wneessen/go-mail. Tests can register
// a MockNotifier to capture outbound messages without a mail server.
package notification
