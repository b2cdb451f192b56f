package handlers

import (
	"context"
	"net/http"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/domain/finance"
	"github.com/glowtours/backoffice/internal/ports"
)

// FinanceHandler handles HTTP requests for budgets and expenses, including
// the expense approval workflow subroutes.
type FinanceHandler struct {
	svc ports.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler with the given service
// port.
func NewFinanceHandler(svc ports.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

// ListBudgets handles GET /api/v1/budgets.
func (h *FinanceHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.svc.ListBudgets(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBudgetListResponse(budgets))
}

// GetBudget handles GET /api/v1/budgets/{id}.
func (h *FinanceHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := h.svc.GetBudget(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBudgetResponse(b))
}

// CreateBudget handles POST /api/v1/budgets.
func (h *FinanceHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req dto.BudgetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateBudget(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToBudgetResponse(created))
}

// UpdateBudget handles PUT /api/v1/budgets/{id}.
func (h *FinanceHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.BudgetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateBudget(r.Context(), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToBudgetResponse(updated))
}

// DeleteBudget handles DELETE /api/v1/budgets/{id}.
func (h *FinanceHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteBudget(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListExpenses handles GET /api/v1/expenses.
func (h *FinanceHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.ListExpenses(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToExpenseListResponse(expenses))
}

// GetExpense handles GET /api/v1/expenses/{id}.
func (h *FinanceHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	e, err := h.svc.GetExpense(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToExpenseResponse(e))
}

// CreateExpense handles POST /api/v1/expenses. The policy check runs here:
// an expense that would overrun its budget arrives flagged.
func (h *FinanceHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpenseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateExpense(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToExpenseResponse(created))
}

// DeleteExpense handles DELETE /api/v1/expenses/{id}.
func (h *FinanceHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteExpense(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApproveExpense handles POST /api/v1/expenses/{id}/approve, debiting the
// linked budget.
func (h *FinanceHandler) ApproveExpense(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.ApproveExpense)
}

// RejectExpense handles POST /api/v1/expenses/{id}/reject.
func (h *FinanceHandler) RejectExpense(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.RejectExpense)
}

// ReimburseExpense handles POST /api/v1/expenses/{id}/reimburse.
func (h *FinanceHandler) ReimburseExpense(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.ReimburseExpense)
}

// ExpenseReceipt handles GET /api/v1/expenses/{id}/receipt, serving the
// stored receipt as a file download.
func (h *FinanceHandler) ExpenseReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	e, err := h.svc.GetExpense(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	serveAttachment(w, r, e.Receipt, "receipt-"+e.ID)
}

// ApprovedTotals handles GET /api/v1/expenses/approved-totals, reporting
// approved and reimbursed sums per currency.
func (h *FinanceHandler) ApprovedTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.ApprovedTotals(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToCurrencyTotalsResponse(totals))
}

func (h *FinanceHandler) transition(w http.ResponseWriter, r *http.Request, op func(context.Context, string) (*finance.Expense, error)) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	e, err := op(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToExpenseResponse(e))
}
