// pkg/render/layout.go

package render

import (
	"fmt"
	"strconv"

	"github.com/receipt-generator/pkg/currency"
	"github.com/receipt-generator/pkg/receipt"
)

// Page geometry in points. A5, single page.
const (
	PageWidth  = 419.53
	PageHeight = 595.28
	Margin     = 30.0
)

// Issuer identity printed in the header of every receipt.
const (
	Title         = "HÓA ĐƠN BÁN LẺ"
	IssuerName    = "My Dream Closet by Linh Tracy"
	IssuerAddress = "42 Nguyễn Khắc Hiếu - Trúc Bạch - Ba Đình - HN"
	IssuerHotline = "Hotline: 0982910485"
	FooterText    = "Cảm ơn quý khách đã mua hàng!"
	totalLabel    = "Tổng tiền: "
	labelName     = "Tên khách hàng:"
	labelPhone    = "Số điện thoại:"
	labelAddress  = "Địa chỉ:"
	labelNote     = "Ghi chú:"
)

// Align is a gofpdf alignment string.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Column describes one column of the item table. Width is a fraction of the
// content width.
type Column struct {
	Label string
	Width float64
	Align Align
}

// Columns is the fixed item table header.
var Columns = []Column{
	{Label: "Tên hàng", Width: 0.40, Align: AlignLeft},
	{Label: "SL", Width: 0.15, Align: AlignCenter},
	{Label: "Đơn giá", Width: 0.25, Align: AlignRight},
	{Label: "Thành tiền", Width: 0.20, Align: AlignRight},
}

// Field is a labelled value in the customer block.
type Field struct {
	Label string
	Value string
}

// Layout is the fully resolved content of a receipt page, top to bottom.
// Two equal documents always produce equal layouts.
type Layout struct {
	Title    string
	Issuer   []string
	Customer [][]Field
	Columns  []Column
	Rows     [][]string
	Total    string
	Footer   string
}

// Build resolves doc into a Layout. It fails only if an amount cannot be
// formatted.
func Build(doc receipt.Document) (Layout, error) {
	c := doc.Customer()
	l := Layout{
		Title:  Title,
		Issuer: []string{IssuerName, IssuerAddress, IssuerHotline},
		Customer: [][]Field{
			{{Label: labelName, Value: c.Name}, {Label: labelPhone, Value: c.Phone}},
			{{Label: labelAddress, Value: c.Address}},
		},
		Columns: Columns,
		Footer:  FooterText,
	}
	if doc.HasNote() {
		l.Customer = append(l.Customer, []Field{{Label: labelNote, Value: c.Note}})
	}

	items := doc.Items()
	l.Rows = make([][]string, 0, len(items))
	for i, item := range items {
		price, err := currency.Format(item.Price)
		if err != nil {
			return Layout{}, fmt.Errorf("item %d price: %w", i, err)
		}
		lineTotal, err := currency.Format(item.LineTotal())
		if err != nil {
			return Layout{}, fmt.Errorf("item %d total: %w", i, err)
		}
		l.Rows = append(l.Rows, []string{item.Name, strconv.Itoa(item.Quantity), price, lineTotal})
	}

	total, err := currency.Format(doc.GrandTotal())
	if err != nil {
		return Layout{}, fmt.Errorf("grand total: %w", err)
	}
	l.Total = totalLabel + total
	return l, nil
}
