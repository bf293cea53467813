// pkg/receipt/data.go

package receipt

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidItem is returned when a submitted good fails EligibleForList.
var ErrInvalidItem = errors.New("invalid item")

// Data is the record supplied by a form, an API client or an input file.
type Data struct {
	CustomerName string     `json:"customerName" yaml:"customerName"`
	PhoneNumber  string     `json:"phoneNumber" yaml:"phoneNumber"`
	Address      string     `json:"address" yaml:"address"`
	Note         string     `json:"note,omitempty" yaml:"note,omitempty"`
	Goods        []LineItem `json:"goods" yaml:"goods"`
	PendingGood  *LineItem  `json:"pendingGood,omitempty" yaml:"pendingGood,omitempty"`
}

// Decode reads Data from a YAML or JSON document.
func Decode(r io.Reader) (Data, error) {
	var d Data
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return Data{}, errors.New("decode receipt data: empty input")
		}
		return Data{}, fmt.Errorf("decode receipt data: %w", err)
	}
	return d, nil
}

// Session replays d into a fresh Session, gating every good the same way
// the add button does.
func (d Data) Session() (*Session, error) {
	s := NewSession()
	s.Customer = Customer{
		Name:    d.CustomerName,
		Phone:   d.PhoneNumber,
		Address: d.Address,
		Note:    d.Note,
	}
	for i, good := range d.Goods {
		if !s.AddItem(good) {
			return nil, fmt.Errorf("%w: goods[%d]: %s", ErrInvalidItem, i, rejectReason(good))
		}
	}
	if d.PendingGood != nil {
		s.Pending = *d.PendingGood
	}
	return s, nil
}

func rejectReason(item LineItem) string {
	switch {
	case item.Name == "":
		return "missing name"
	case item.Quantity <= 0:
		return "non-positive quantity"
	case item.Price.IsNegative():
		return "negative price"
	}
	return "rejected"
}
