// Package iterator demonstrates the Iterator pattern: a user list is
// traversed through an iterator object (or a range-over-func sequence)
// without exposing the slice behind it.
package iterator

import (
	"fmt"
	"io"
	"iter"
)

type User struct {
	Name string
}

// UserIterator walks a collection one user at a time.
type UserIterator interface {
	HasNext() bool
	// Next returns the next user, or nil once the iterator is exhausted.
	Next() *User
}

// UserCollection is anything that can hand out a UserIterator.
type UserCollection interface {
	CreateIterator() UserIterator
}

// UserList is an ordered collection of users.
type UserList struct {
	users []*User
}

func (l *UserList) Add(u *User) {
	l.users = append(l.users, u)
}

// CreateIterator returns an iterator over a snapshot of the list, so
// users added afterwards are not visited.
func (l *UserList) CreateIterator() UserIterator {
	return &listIterator{users: append([]*User(nil), l.users...)}
}

// All yields the users in insertion order.
func (l *UserList) All() iter.Seq[*User] {
	return func(yield func(*User) bool) {
		for _, u := range l.users {
			if !yield(u) {
				return
			}
		}
	}
}

type listIterator struct {
	users    []*User
	position int
}

func (it *listIterator) HasNext() bool {
	return it.position < len(it.users)
}

func (it *listIterator) Next() *User {
	if !it.HasNext() {
		return nil
	}
	u := it.users[it.position]
	it.position++
	return u
}

// Demo lists Alice, Bob and Charlie through the iterator.
func Demo(w io.Writer) error {
	list := &UserList{}
	for _, name := range []string{"Alice", "Bob", "Charlie"} {
		list.Add(&User{Name: name})
	}

	for it := list.CreateIterator(); it.HasNext(); {
		fmt.Fprintf(w, "User: %s\n", it.Next().Name)
	}
	return nil
}
