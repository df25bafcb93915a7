package notification

// NotificationService delivers transactional email.
type NotificationService interface {
	// Send delivers a message to the given recipient.
	Send(to, subject, body string) error
	// SendToOperator delivers a message to the site operator's inbox,
	// optionally with a reply-to address for the visitor who triggered it.
	SendToOperator(replyTo, subject, body string) error
}
