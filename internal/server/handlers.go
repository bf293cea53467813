// internal/server/handlers.go

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/receipt-generator/pkg/render"
	"github.com/receipt-generator/pkg/receipt"
)

const maxBodyBytes = 1 << 20

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.index.Execute(w, nil); err != nil {
		slog.Error("Failed to render form", "error", err, "request_id", RequestID(r.Context()))
	}
}

// generateReceiptHandler accepts the HTML form and answers with the PDF.
func (s *Server) generateReceiptHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid form: "+err.Error())
		return
	}
	d, err := dataFromForm(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	s.download(w, r, d, "form")
}

// createReceiptHandler accepts receipt.Data as JSON and answers with the PDF.
func (s *Server) createReceiptHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.decodeJSON(w, r)
	if !ok {
		return
	}
	s.download(w, r, d, "api")
}

type previewItem struct {
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
	PriceText     string          `json:"priceText"`
	LineTotalText string          `json:"lineTotalText"`
}

type previewResponse struct {
	Items          []previewItem   `json:"items"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
	GrandTotalText string          `json:"grandTotalText"`
	HasNote        bool            `json:"hasNote"`
}

// previewReceiptHandler assembles the receipt and returns its computed lines
// without drawing a PDF.
func (s *Server) previewReceiptHandler(w http.ResponseWriter, r *http.Request) {
	d, ok := s.decodeJSON(w, r)
	if !ok {
		return
	}
	doc, ok := s.assemble(w, r, d)
	if !ok {
		return
	}
	l, err := render.Build(doc)
	if err != nil {
		slog.Error("Failed to build receipt layout", "error", err, "request_id", RequestID(r.Context()))
		respondError(w, r, http.StatusInternalServerError, "Error building receipt")
		return
	}

	resp := previewResponse{
		Items:          make([]previewItem, 0, doc.Len()),
		GrandTotal:     doc.GrandTotal(),
		GrandTotalText: l.Total,
		HasNote:        doc.HasNote(),
	}
	for i, item := range doc.Items() {
		resp.Items = append(resp.Items, previewItem{
			Name:          item.Name,
			Quantity:      item.Quantity,
			Price:         item.Price,
			LineTotal:     item.LineTotal(),
			PriceText:     l.Rows[i][2],
			LineTotalText: l.Rows[i][3],
		})
	}
	respondOK(w, r, "Receipt assembled", resp)
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request) (receipt.Data, bool) {
	var d receipt.Data
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&d); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return receipt.Data{}, false
	}
	return d, true
}

// assemble replays d through a session. Validation failures are answered
// with 422 and counted.
func (s *Server) assemble(w http.ResponseWriter, r *http.Request, d receipt.Data) (receipt.Document, bool) {
	sess, err := d.Session()
	if err == nil {
		var doc receipt.Document
		doc, err = sess.Submit()
		if err == nil {
			return doc, true
		}
	}

	reason := "invalid"
	switch {
	case errors.Is(err, receipt.ErrInvalidItem):
		reason = "invalid_item"
	case errors.Is(err, receipt.ErrMissingField):
		reason = "missing_field"
	case errors.Is(err, receipt.ErrNothingToSubmit):
		reason = "empty"
	}
	s.metrics.Rejected.WithLabelValues(reason).Inc()
	slog.Debug("Receipt rejected", "reason", reason, "error", err, "request_id", RequestID(r.Context()))
	respondError(w, r, http.StatusUnprocessableEntity, err.Error())
	return receipt.Document{}, false
}

// download renders the receipt into memory first so a failure never sends a
// partial file.
func (s *Server) download(w http.ResponseWriter, r *http.Request, d receipt.Data, source string) {
	doc, ok := s.assemble(w, r, d)
	if !ok {
		return
	}

	var buf bytes.Buffer
	start := time.Now()
	if err := s.renderer.Render(&buf, doc); err != nil {
		slog.Error("Failed to render receipt", "error", err, "request_id", RequestID(r.Context()))
		respondError(w, r, http.StatusInternalServerError, "Error generating PDF")
		return
	}
	s.metrics.RenderSeconds.Observe(time.Since(start).Seconds())
	s.metrics.Rendered.WithLabelValues(source).Inc()

	name := render.FileName(s.now())
	slog.Info("Receipt generated",
		"file", name,
		"items", doc.Len(),
		"grand_total", doc.GrandTotal().String(),
		"request_id", RequestID(r.Context()),
	)

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", name))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// dataFromForm reads the customer fields, the repeated item_* fields of the
// added goods and the pending_* entry fields.
func dataFromForm(r *http.Request) (receipt.Data, error) {
	d := receipt.Data{
		CustomerName: r.PostForm.Get("customer_name"),
		PhoneNumber:  r.PostForm.Get("phone_number"),
		Address:      r.PostForm.Get("address"),
		Note:         r.PostForm.Get("note"),
	}

	names := r.PostForm["item_name"]
	quantities := r.PostForm["item_quantity"]
	prices := r.PostForm["item_price"]
	if len(quantities) != len(names) || len(prices) != len(names) {
		return receipt.Data{}, errors.New("item_name, item_quantity and item_price must have the same length")
	}
	for i := range names {
		item, err := parseItem(names[i], quantities[i], prices[i])
		if err != nil {
			return receipt.Data{}, fmt.Errorf("item %d: %w", i, err)
		}
		d.Goods = append(d.Goods, item)
	}

	if _, present := r.PostForm["pending_name"]; present {
		pending, err := parseItem(r.PostForm.Get("pending_name"), r.PostForm.Get("pending_quantity"), r.PostForm.Get("pending_price"))
		if err != nil {
			return receipt.Data{}, fmt.Errorf("pending item: %w", err)
		}
		d.PendingGood = &pending
	}
	return d, nil
}

// parseItem treats blank numeric fields as the untouched defaults.
func parseItem(name, quantity, price string) (receipt.LineItem, error) {
	item := receipt.DefaultPending()
	item.Name = name
	if quantity != "" {
		q, err := strconv.Atoi(quantity)
		if err != nil {
			return receipt.LineItem{}, fmt.Errorf("invalid quantity %q", quantity)
		}
		item.Quantity = q
	}
	if price != "" {
		p, err := decimal.NewFromString(price)
		if err != nil {
			return receipt.LineItem{}, fmt.Errorf("invalid price %q", price)
		}
		item.Price = p
	}
	return item, nil
}
