// Package factory demonstrates the Factory pattern: the client asks for a
// notification channel by name and receives an implementation without
// constructing it itself.
package factory

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnknownChannel is returned for a channel name the factory cannot build.
var ErrUnknownChannel = errors.New("unknown notification channel")

// Notification delivers a message over one channel.
type Notification interface {
	Send(message string)
}

type EmailNotification struct{ out io.Writer }

func (n EmailNotification) Send(message string) { fmt.Fprintf(n.out, "Sending Email: %s\n", message) }

type SMSNotification struct{ out io.Writer }

func (n SMSNotification) Send(message string) { fmt.Fprintf(n.out, "Sending SMS: %s\n", message) }

type PushNotification struct{ out io.Writer }

func (n PushNotification) Send(message string) {
	fmt.Fprintf(n.out, "Sending Push Notification: %s\n", message)
}

// NotificationFactory builds notifications that write to out.
type NotificationFactory struct {
	out io.Writer
}

func NewNotificationFactory(out io.Writer) *NotificationFactory {
	return &NotificationFactory{out: out}
}

// Create returns the notification for kind ("email", "sms" or "push").
func (f *NotificationFactory) Create(kind string) (Notification, error) {
	switch kind {
	case "email":
		return EmailNotification{out: f.out}, nil
	case "sms":
		return SMSNotification{out: f.out}, nil
	case "push":
		return PushNotification{out: f.out}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, kind)
	}
}

// Kinds lists the channel names Create accepts.
func (f *NotificationFactory) Kinds() []string {
	return []string{"email", "sms", "push"}
}

// Demo sends one greeting over each channel.
func Demo(w io.Writer) error {
	factory := NewNotificationFactory(w)
	greetings := map[string]string{
		"email": "Hello via Email!",
		"sms":   "Hello via SMS!",
		"push":  "Hello via Push Notification!",
	}

	for _, kind := range factory.Kinds() {
		n, err := factory.Create(kind)
		if err != nil {
			return err
		}
		n.Send(greetings[kind])
	}
	return nil
}
