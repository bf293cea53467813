package receipt

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func item(name string, qty int, price int64) LineItem {
	return LineItem{Name: name, Quantity: qty, Price: decimal.NewFromInt(price)}
}

func TestEligibility(t *testing.T) {
	tests := []struct {
		name        string
		item        LineItem
		wantList    bool
		wantInclude bool
	}{
		{name: "valid priced item", item: item("Áo", 2, 150000), wantList: true, wantInclude: true},
		{name: "zero price", item: item("Quà tặng", 1, 0), wantList: true, wantInclude: false},
		{name: "untouched defaults", item: DefaultPending(), wantList: false, wantInclude: false},
		{name: "missing name", item: item("", 1, 1000), wantList: false, wantInclude: false},
		{name: "zero quantity", item: item("Áo", 0, 1000), wantList: false, wantInclude: false},
		{name: "negative quantity", item: item("Áo", -1, 1000), wantList: false, wantInclude: false},
		{name: "negative price", item: item("Áo", 1, -1), wantList: false, wantInclude: false},
		{name: "blank name is not trimmed", item: item(" ", 1, 1000), wantList: true, wantInclude: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EligibleForList(tt.item); got != tt.wantList {
				t.Errorf("EligibleForList() = %v, want %v", got, tt.wantList)
			}
			if got := EligibleForAutoInclude(tt.item); got != tt.wantInclude {
				t.Errorf("EligibleForAutoInclude() = %v, want %v", got, tt.wantInclude)
			}
		})
	}
}

func TestLineTotal(t *testing.T) {
	tests := []struct {
		item LineItem
		want string
	}{
		{item: item("Áo", 2, 150000), want: "300000"},
		{item: item("Quần", 1, 250000), want: "250000"},
		{item: LineItem{Name: "Kẹo", Quantity: 3, Price: decimal.RequireFromString("0.1")}, want: "0.3"},
		{item: item("Quà tặng", 5, 0), want: "0"},
	}

	for _, tt := range tests {
		if got := tt.item.LineTotal(); !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("%s LineTotal() = %s, want %s", tt.item.Name, got, tt.want)
		}
	}
}

func TestCustomerValidate(t *testing.T) {
	full := Customer{Name: "Nguyen Van A", Phone: "0900000000", Address: "Hanoi"}
	if err := full.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	err := Customer{Name: "Nguyen Van A"}.Validate()
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("Validate() = %v, want ErrMissingField", err)
	}
	for _, field := range []string{"phone number", "address"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %q", err, field)
		}
	}
}

func TestAssemble(t *testing.T) {
	customer := Customer{Name: "Nguyen Van A", Phone: "0900000000", Address: "Hanoi"}

	tests := []struct {
		name      string
		working   []LineItem
		pending   LineItem
		wantNames []string
		wantTotal int64
	}{
		{
			name:      "two items no pending",
			working:   []LineItem{item("Áo", 2, 150000), item("Quần", 1, 250000)},
			pending:   DefaultPending(),
			wantNames: []string{"Áo", "Quần"},
			wantTotal: 550000,
		},
		{
			name:      "empty list with untouched pending",
			working:   nil,
			pending:   item("", 1, 0),
			wantNames: []string{},
			wantTotal: 0,
		},
		{
			name:      "pending with price is appended last",
			working:   []LineItem{item("Áo", 1, 100000)},
			pending:   item("Mũ", 2, 50000),
			wantNames: []string{"Áo", "Mũ"},
			wantTotal: 200000,
		},
		{
			name:      "pending with zero price is dropped",
			working:   []LineItem{item("Áo", 1, 100000)},
			pending:   item("Quà tặng", 1, 0),
			wantNames: []string{"Áo"},
			wantTotal: 100000,
		},
		{
			name:      "zero price item added explicitly is kept",
			working:   []LineItem{item("Quà tặng", 1, 0), item("Áo", 1, 100000)},
			pending:   DefaultPending(),
			wantNames: []string{"Quà tặng", "Áo"},
			wantTotal: 100000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Assemble(customer, tt.working, tt.pending)

			items := doc.Items()
			if len(items) != len(tt.wantNames) {
				t.Fatalf("got %d items, want %d", len(items), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if items[i].Name != name {
					t.Errorf("items[%d] = %q, want %q", i, items[i].Name, name)
				}
			}

			if !doc.GrandTotal().Equal(decimal.NewFromInt(tt.wantTotal)) {
				t.Errorf("GrandTotal() = %s, want %d", doc.GrandTotal(), tt.wantTotal)
			}

			sum := decimal.Zero
			for _, it := range items {
				sum = sum.Add(it.LineTotal())
			}
			if !doc.GrandTotal().Equal(sum) {
				t.Errorf("GrandTotal() = %s, sum of line totals = %s", doc.GrandTotal(), sum)
			}
		})
	}
}

func TestAssembleIsIdempotent(t *testing.T) {
	customer := Customer{Name: "Nguyen Van A", Phone: "0900000000", Address: "Hanoi", Note: "Giao buổi sáng"}
	working := []LineItem{item("Áo", 2, 150000), item("Quần", 1, 250000)}
	pending := item("Mũ", 1, 90000)

	a := Assemble(customer, working, pending)
	b := Assemble(customer, working, pending)

	if a.Customer() != b.Customer() {
		t.Errorf("customers differ: %+v vs %+v", a.Customer(), b.Customer())
	}
	if !sameItems(a.Items(), b.Items()) {
		t.Errorf("items differ: %v vs %v", a.Items(), b.Items())
	}
	if !a.GrandTotal().Equal(b.GrandTotal()) {
		t.Errorf("totals differ: %s vs %s", a.GrandTotal(), b.GrandTotal())
	}
}

func TestDocumentDoesNotShareWorkingList(t *testing.T) {
	working := []LineItem{item("Áo", 1, 100000)}
	doc := Assemble(Customer{}, working, DefaultPending())

	working[0].Name = "changed"
	if got := doc.Items()[0].Name; got != "Áo" {
		t.Errorf("document item changed through working list: %q", got)
	}

	items := doc.Items()
	items[0].Quantity = 99
	if got := doc.Items()[0].Quantity; got != 1 {
		t.Errorf("document item changed through Items(): %d", got)
	}
}

func sameItems(a, b []LineItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Quantity != b[i].Quantity || !a[i].Price.Equal(b[i].Price) {
			return false
		}
	}
	return true
}
