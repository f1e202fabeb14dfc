// Package notificationservice sends messages to the client over a channel
// chosen at construction time. NotificationService only knows the
// Notification abstraction, never a concrete channel.
package notificationservice

import (
	"errors"
	"fmt"

	"github.com/jcmexdev/solid-examples/internal/pkg/sink"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

var ErrUnknownChannel = errors.New("unknown notification channel")

// Notification delivers a message to the client.
type Notification interface {
	SendNotification(message string)
}

type EmailNotification struct {
	out sink.Sink
}

func NewEmailNotification(out sink.Sink) *EmailNotification {
	return &EmailNotification{out: out}
}

func (n *EmailNotification) SendNotification(message string) {
	n.out.Write("Email notification: " + message)
}

type SMSNotification struct {
	out sink.Sink
}

func NewSMSNotification(out sink.Sink) *SMSNotification {
	return &SMSNotification{out: out}
}

func (n *SMSNotification) SendNotification(message string) {
	n.out.Write("SMS notification: " + message)
}

// ForChannel returns the notification registered under name.
func ForChannel(name string, out sink.Sink) (Notification, error) {
	switch name {
	case ChannelEmail:
		return NewEmailNotification(out), nil
	case ChannelSMS:
		return NewSMSNotification(out), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
}

type NotificationService struct {
	notification Notification
}

func NewNotificationService(n Notification) *NotificationService {
	return &NotificationService{notification: n}
}

// NotifyClient passes message straight to the configured channel.
func (s *NotificationService) NotifyClient(message string) {
	s.notification.SendNotification(message)
}
