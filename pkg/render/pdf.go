// pkg/render/pdf.go

package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/receipt-generator/pkg/receipt"
)

const (
	utf8Family = "Receipt"
	coreFamily = "Helvetica"
)

// Options configures a Renderer.
type Options struct {
	// FontPath points to a UTF-8 TrueType font. When empty the core
	// Helvetica font is used and characters outside cp1252 are lost.
	FontPath string
	// Now stamps the PDF creation date. Defaults to time.Now.
	Now func() time.Time
}

// Renderer draws receipts onto a single A5 page.
type Renderer struct {
	font []byte
	now  func() time.Time
}

// NewRenderer loads the configured font. A font that cannot be read or
// parsed is a fatal error.
func NewRenderer(opts Options) (*Renderer, error) {
	r := &Renderer{now: opts.Now}
	if r.now == nil {
		r.now = time.Now
	}
	if opts.FontPath == "" {
		slog.Warn("No receipt font configured, Vietnamese characters will not render", "fallback", coreFamily)
		return r, nil
	}

	font, err := os.ReadFile(opts.FontPath)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	if err := checkFont(font); err != nil {
		return nil, fmt.Errorf("load font %s: %w", opts.FontPath, err)
	}
	r.font = font
	slog.Debug("Receipt font loaded", "path", opts.FontPath, "bytes", len(font))
	return r, nil
}

// checkFont draws a throwaway page with font. gofpdf only reports a broken
// TrueType file once the font is selected and the document is written.
func checkFont(font []byte) error {
	pdf := gofpdf.New("P", "pt", "A5", "")
	pdf.AddUTF8FontFromBytes(utf8Family, "", font)
	pdf.SetFont(utf8Family, "", 10)
	pdf.AddPage()
	pdf.CellFormat(0, 12, "Tổng tiền ₫", "", 1, "L", false, 0, "")
	return pdf.Output(io.Discard)
}

// Render lays out doc and writes the PDF to w.
func (r *Renderer) Render(w io.Writer, doc receipt.Document) error {
	l, err := Build(doc)
	if err != nil {
		return fmt.Errorf("build layout: %w", err)
	}
	return r.Draw(w, l)
}

// Draw writes l to w as a one-page PDF.
func (r *Renderer) Draw(w io.Writer, l Layout) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	pdf.SetCreationDate(r.now())
	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetAutoPageBreak(false, Margin)

	p := r.newPage(pdf)
	p.header(l)
	p.customer(l.Customer)
	p.table(l.Columns, l.Rows)
	p.total(l.Total)
	p.footer(l.Footer)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

type page struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
	width  float64
}

func (r *Renderer) newPage(pdf *gofpdf.Fpdf) *page {
	p := &page{pdf: pdf, width: PageWidth - 2*Margin}
	if r.font != nil {
		pdf.AddUTF8FontFromBytes(utf8Family, "", r.font)
		p.family = utf8Family
		p.tr = func(s string) string { return s }
	} else {
		p.family = coreFamily
		p.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.AddPage()
	return p
}

func (p *page) style(size float64, muted bool) {
	p.pdf.SetFont(p.family, "", size)
	if muted {
		p.pdf.SetTextColor(0x66, 0x66, 0x66)
	} else {
		p.pdf.SetTextColor(0, 0, 0)
	}
}

func (p *page) rule() {
	y := p.pdf.GetY()
	p.pdf.SetDrawColor(0, 0, 0)
	p.pdf.SetLineWidth(1)
	p.pdf.Line(Margin, y, PageWidth-Margin, y)
}

func (p *page) cell(w, h float64, text string, align Align, ln int) {
	p.pdf.CellFormat(w, h, p.tr(text), "", ln, string(align), false, 0, "")
}

func (p *page) header(l Layout) {
	p.style(20, false)
	p.cell(p.width, 24, l.Title, AlignCenter, 1)
	p.pdf.Ln(6)

	p.style(10, true)
	for _, line := range l.Issuer {
		p.cell(p.width, 13, line, AlignCenter, 1)
	}
	p.pdf.Ln(10)
	p.rule()
	p.pdf.Ln(20)
}

// customer draws each row split into equal-width fields; values wrap
// inside their field.
func (p *page) customer(rows [][]Field) {
	for _, row := range rows {
		fieldW := p.width / float64(len(row))
		top := p.pdf.GetY()
		bottom := top
		for i, f := range row {
			p.pdf.SetXY(Margin+float64(i)*fieldW, top)

			p.style(10, true)
			labelW := p.pdf.GetStringWidth(p.tr(f.Label)) + 5
			p.cell(labelW, 16, f.Label, AlignLeft, 0)

			p.style(12, false)
			p.pdf.MultiCell(fieldW-labelW, 16, p.tr(f.Value), "", string(AlignLeft), false)
			if y := p.pdf.GetY(); y > bottom {
				bottom = y
			}
		}
		p.pdf.SetXY(Margin, bottom+4)
	}
	p.pdf.Ln(10)
}

func (p *page) table(cols []Column, rows [][]string) {
	p.style(8.4, false)
	for _, col := range cols {
		p.cell(col.Width*p.width, 14, col.Label, col.Align, 0)
	}
	p.pdf.Ln(14)
	p.rule()
	p.pdf.Ln(5)

	for _, row := range rows {
		for i, text := range row {
			p.cell(cols[i].Width*p.width, 12, text, cols[i].Align, 0)
		}
		p.pdf.Ln(12)
	}
}

func (p *page) total(text string) {
	p.pdf.Ln(10)
	p.rule()
	p.pdf.Ln(5)
	p.style(9.1, false)
	p.cell(p.width, 14, text, AlignRight, 1)
}

// footer is pinned to the bottom margin whatever the table length.
func (p *page) footer(text string) {
	p.style(10, true)
	p.pdf.SetXY(Margin, PageHeight-Margin-12)
	p.cell(p.width, 12, text, AlignCenter, 0)
}
