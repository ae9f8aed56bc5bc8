package email

import "contala_backend/internal/logger"

// MockProvider logs messages instead of dialing a relay. Used in
// development and tests, and whenever email is disabled in config.
type MockProvider struct {
	Sent []*Email
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(email *Email) error {
	p.Sent = append(p.Sent, email)
	logger.Info("mock email sent",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

func (p *MockProvider) Close() error {
	return nil
}
