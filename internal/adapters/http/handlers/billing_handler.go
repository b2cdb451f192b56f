package handlers

import (
	"net/http"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/domain/billing"
	"github.com/glowtours/backoffice/internal/ports"
)

// BillingHandler handles HTTP requests for invoices.
type BillingHandler struct {
	svc ports.BillingService
}

// NewBillingHandler creates a new BillingHandler with the given service
// port.
func NewBillingHandler(svc ports.BillingService) *BillingHandler {
	return &BillingHandler{svc: svc}
}

// List handles GET /api/v1/invoices.
func (h *BillingHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToInvoiceListResponse(invoices))
}

// Get handles GET /api/v1/invoices/{id}.
func (h *BillingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToInvoiceResponse(inv))
}

// Create handles POST /api/v1/invoices. The monetary snapshot is computed
// here, once.
func (h *BillingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.InvoiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.Create(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToInvoiceResponse(created))
}

// Update handles PUT /api/v1/invoices/{id}. Totals are never recomputed.
func (h *BillingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.InvoiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToInvoiceResponse(updated))
}

// Delete handles DELETE /api/v1/invoices/{id}.
func (h *BillingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetStatus handles POST /api/v1/invoices/{id}/status, applying one billing
// transition.
func (h *BillingHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.StatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	inv, err := h.svc.SetStatus(r.Context(), id, billing.Status(req.Status))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToInvoiceResponse(inv))
}

// Outstanding handles GET /api/v1/invoices/outstanding, reporting sent and
// overdue totals per currency.
func (h *BillingHandler) Outstanding(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.OutstandingTotals(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToCurrencyTotalsResponse(totals))
}
