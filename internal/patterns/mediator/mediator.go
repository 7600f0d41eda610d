// Package mediator demonstrates the Mediator pattern: chat users never
// reference each other; the chat room relays every message.
package mediator

import (
	"fmt"
	"io"
)

// ChatMediator relays messages between registered users.
type ChatMediator interface {
	AddUser(u *User)
	SendMessage(message string, from *User)
}

// ChatRoom delivers each message to every registered user except the sender.
type ChatRoom struct {
	users []*User
}

func NewChatRoom() *ChatRoom {
	return &ChatRoom{}
}

func (r *ChatRoom) AddUser(u *User) {
	r.users = append(r.users, u)
}

func (r *ChatRoom) SendMessage(message string, from *User) {
	for _, u := range r.users {
		if u != from {
			u.Receive(message)
		}
	}
}

// User is a chat participant.
type User struct {
	Name     string
	out      io.Writer
	mediator ChatMediator
}

func NewUser(out io.Writer, mediator ChatMediator, name string) *User {
	return &User{Name: name, out: out, mediator: mediator}
}

func (u *User) Send(message string) {
	fmt.Fprintf(u.out, "%s sends: %s\n", u.Name, message)
	u.mediator.SendMessage(message, u)
}

func (u *User) Receive(message string) {
	fmt.Fprintf(u.out, "%s received: %s\n", u.Name, message)
}

// Demo registers Alice, Bob and Charlie and exchanges two messages.
func Demo(w io.Writer) error {
	room := NewChatRoom()
	alice := NewUser(w, room, "Alice")
	bob := NewUser(w, room, "Bob")
	charlie := NewUser(w, room, "Charlie")

	room.AddUser(alice)
	room.AddUser(bob)
	room.AddUser(charlie)

	alice.Send("Hello, everyone!")
	bob.Send("Hi, Alice!")
	return nil
}
