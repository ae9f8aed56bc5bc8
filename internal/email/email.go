package email

// Email is a single outgoing message.
type Email struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

// Provider sends email. Delivery is best-effort; callers log and
// continue on failure.
type Provider interface {
	Send(email *Email) error
	Close() error
}
