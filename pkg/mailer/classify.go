package mailer

import (
	"context"
	"errors"
	"io"
	"net"
	"net/textproto"
	"strings"
	"syscall"

	"github.com/wneessen/go-mail"
)

// Class groups SMTP failures by what the caller can do about them.
type Class string

const (
	ClassAuth         Class = "auth"
	ClassRecipients   Class = "recipients"
	ClassDisconnected Class = "disconnected"
	ClassTimeout      Class = "timeout"
	ClassSMTP         Class = "smtp"
	ClassUnknown      Class = "unknown"
)

// Failure is a classified send error with the message reported to API clients.
type Failure struct {
	Class   Class
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Classify maps a Send error onto a Failure. It returns nil for a nil error.
func Classify(err error) *Failure {
	if err == nil {
		return nil
	}

	class := classOf(err)
	return &Failure{Class: class, Message: messageFor(class, err), Err: err}
}

func classOf(err error) Class {
	if errors.Is(err, context.DeadlineExceeded) {
		return ClassTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ClassTimeout
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return ClassAuth
		}
	}
	if strings.Contains(strings.ToLower(err.Error()), "smtp auth") {
		return ClassAuth
	}

	var sendErr *mail.SendError
	if errors.As(err, &sendErr) && sendErr.Reason == mail.ErrSMTPRcptTo {
		return ClassRecipients
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed) || errors.Is(err, syscall.ECONNRESET) {
		return ClassDisconnected
	}

	if protoErr != nil || sendErr != nil {
		return ClassSMTP
	}
	return ClassUnknown
}

func messageFor(class Class, err error) string {
	switch class {
	case ClassAuth:
		return "SMTP Authentication failed: " + err.Error()
	case ClassRecipients:
		return "Recipients refused: " + err.Error()
	case ClassDisconnected:
		return "SMTP server disconnected: " + err.Error()
	case ClassTimeout:
		return "Email send timeout - please try again"
	case ClassSMTP:
		return "SMTP error: " + err.Error()
	default:
		return "Unexpected error sending email: " + err.Error()
	}
}
