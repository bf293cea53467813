// pkg/receipt/session.go

package receipt

import (
	"errors"
	"fmt"
)

var (
	// ErrNothingToSubmit is returned when neither the working list nor the
	// pending entry has anything to print.
	ErrNothingToSubmit = errors.New("receipt has no items")
	// ErrIndexOutOfRange is returned by Remove for an unknown position.
	ErrIndexOutOfRange = errors.New("item index out of range")
)

// Session is the mutable state of one form: customer fields, the working
// list and the pending entry. It is owned by a single caller and is not safe
// for concurrent use.
type Session struct {
	Customer Customer
	Pending  LineItem

	items []LineItem
}

func NewSession() *Session {
	return &Session{Pending: DefaultPending()}
}

// Add moves the pending entry into the working list and clears the entry
// fields. Rejected input is left in place so it can be corrected.
func (s *Session) Add() bool {
	if !s.AddItem(s.Pending) {
		return false
	}
	s.Pending = DefaultPending()
	return true
}

// AddItem appends item to the working list if it passes EligibleForList.
func (s *Session) AddItem(item LineItem) bool {
	if !EligibleForList(item) {
		return false
	}
	s.items = append(s.items, item)
	return true
}

// Remove deletes the item at index, keeping the order of the others.
func (s *Session) Remove(index int) error {
	if index < 0 || index >= len(s.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.items = append(s.items[:index:index], s.items[index+1:]...)
	return nil
}

// Items returns a copy of the working list.
func (s *Session) Items() []LineItem {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// CanSubmit mirrors the submit button: enabled when something was added or
// the pending entry would be auto-included.
func (s *Session) CanSubmit() bool {
	return len(s.items) > 0 || EligibleForAutoInclude(s.Pending)
}

// Submit validates the customer fields and assembles the receipt.
func (s *Session) Submit() (Document, error) {
	if err := s.Customer.Validate(); err != nil {
		return Document{}, err
	}
	if !s.CanSubmit() {
		return Document{}, ErrNothingToSubmit
	}
	return Assemble(s.Customer, s.items, s.Pending), nil
}
