package mocks

import (
	"github.com/stretchr/testify/mock"
)

type Mailer struct {
	mock.Mock
}

func (m *Mailer) SendMail(toEmail string, subject string, body string) error {
	args := m.Called(toEmail, subject, body)
	return args.Error(0)
}
