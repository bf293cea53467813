// pkg/receipt/receipt.go

package receipt

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrMissingField is returned when a required customer field is empty.
	ErrMissingField = errors.New("missing required field")
)

// LineItem represents one good on the receipt.
type LineItem struct {
	Name     string          `json:"name" yaml:"name"`
	Quantity int             `json:"quantity" yaml:"quantity"`
	Price    decimal.Decimal `json:"price" yaml:"price"`
}

// LineTotal returns quantity * price.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// DefaultPending returns the entry fields as they look before the user types anything.
func DefaultPending() LineItem {
	return LineItem{Quantity: 1, Price: decimal.Zero}
}

// EligibleForList reports whether item may be appended to a working list.
// A zero price is allowed.
func EligibleForList(item LineItem) bool {
	return item.Name != "" && item.Quantity > 0 && !item.Price.IsNegative()
}

// EligibleForAutoInclude reports whether a pending, not yet added item is
// folded into the receipt on submit. Unlike EligibleForList it requires a
// strictly positive price, so untouched entry fields are dropped.
func EligibleForAutoInclude(item LineItem) bool {
	return EligibleForList(item) && item.Price.IsPositive()
}

// Customer holds the buyer details printed on the receipt.
type Customer struct {
	Name    string
	Phone   string
	Address string
	Note    string
}

// Validate reports every missing required field.
func (c Customer) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, fmt.Errorf("%w: customer name", ErrMissingField))
	}
	if c.Phone == "" {
		errs = append(errs, fmt.Errorf("%w: phone number", ErrMissingField))
	}
	if c.Address == "" {
		errs = append(errs, fmt.Errorf("%w: address", ErrMissingField))
	}
	return errors.Join(errs...)
}

// Document is an assembled receipt. It cannot be changed once built; a new
// submission produces a new Document.
type Document struct {
	customer Customer
	items    []LineItem
}

// Assemble freezes the working list into a Document. The pending item is
// appended last when EligibleForAutoInclude holds. Assemble never rejects
// its input: an empty working list and an ineligible pending item give a
// Document without items.
func Assemble(customer Customer, working []LineItem, pending LineItem) Document {
	items := make([]LineItem, len(working), len(working)+1)
	copy(items, working)
	if EligibleForAutoInclude(pending) {
		items = append(items, pending)
	}
	return Document{customer: customer, items: items}
}

func (d Document) Customer() Customer {
	return d.customer
}

// Items returns a copy of the receipt lines in insertion order.
func (d Document) Items() []LineItem {
	items := make([]LineItem, len(d.items))
	copy(items, d.items)
	return items
}

func (d Document) Len() int {
	return len(d.items)
}

// HasNote reports whether the optional note should be printed.
func (d Document) HasNote() bool {
	return d.customer.Note != ""
}

// GrandTotal sums the line totals of the current items.
func (d Document) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range d.items {
		total = total.Add(item.LineTotal())
	}
	return total
}
