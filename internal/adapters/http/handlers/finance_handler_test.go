package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/adapters/http/handlers"
	"github.com/glowtours/backoffice/internal/app"
)

func newFinanceHandler() *handlers.FinanceHandler {
	svc := app.NewFinanceService(newTestStore(), testLogger(), 0)
	return handlers.NewFinanceHandler(svc)
}

func createBudget(t *testing.T, h *handlers.FinanceHandler, allocated float64) dto.BudgetResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", jsonBody(t, dto.BudgetRequest{
		Name:      "Recruitment drives",
		Category:  "operations",
		Currency:  "USD",
		Allocated: allocated,
	}))
	r.Header.Set("Content-Type", "application/json")
	h.CreateBudget(rec, r)
	requireStatus(t, rec, http.StatusCreated)
	return decodeJSON[dto.BudgetResponse](t, rec)
}

func createExpense(t *testing.T, h *handlers.FinanceHandler, budgetID string, amount float64) dto.ExpenseResponse {
	t.Helper()
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", jsonBody(t, dto.ExpenseRequest{
		BudgetID:    budgetID,
		Description: "Job fair stand",
		Amount:      amount,
		Currency:    "USD",
	}))
	r.Header.Set("Content-Type", "application/json")
	h.CreateExpense(rec, r)
	requireStatus(t, rec, http.StatusCreated)
	return decodeJSON[dto.ExpenseResponse](t, rec)
}

func TestBudgetCreate_DerivesRemaining(t *testing.T) {
	t.Parallel()
	h := newFinanceHandler()

	b := createBudget(t, h, 2000)
	if b.Spent != 0 || b.Remaining != 2000 {
		t.Errorf("Spent/Remaining = %v/%v, want 0/2000", b.Spent, b.Remaining)
	}
}

func TestExpenseCreate_OverBudgetArrivesFlagged(t *testing.T) {
	t.Parallel()
	h := newFinanceHandler()
	b := createBudget(t, h, 100)

	e := createExpense(t, h, b.ID, 250)
	if e.Status != "flagged" {
		t.Errorf("Status = %q, want flagged", e.Status)
	}
	if e.PolicyViolation == "" {
		t.Error("PolicyViolation is empty for an over-budget expense")
	}
}

func TestExpenseApprove_DebitsBudget(t *testing.T) {
	t.Parallel()
	h := newFinanceHandler()
	b := createBudget(t, h, 1000)
	e := createExpense(t, h, b.ID, 300)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/"+e.ID+"/approve", nil)
	h.ApproveExpense(rec, withChiParams(r, map[string]string{"id": e.ID}))

	requireStatus(t, rec, http.StatusOK)
	approved := decodeJSON[dto.ExpenseResponse](t, rec)
	if approved.Status != "approved" {
		t.Errorf("Status = %q, want approved", approved.Status)
	}

	rec = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/api/v1/budgets/"+b.ID, nil)
	h.GetBudget(rec, withChiParams(r, map[string]string{"id": b.ID}))

	requireStatus(t, rec, http.StatusOK)
	budget := decodeJSON[dto.BudgetResponse](t, rec)
	if budget.Spent != 300 || budget.Remaining != 700 {
		t.Errorf("Spent/Remaining = %v/%v, want 300/700", budget.Spent, budget.Remaining)
	}
}

func TestExpenseReimburse_BeforeApprovalConflicts(t *testing.T) {
	t.Parallel()
	h := newFinanceHandler()
	b := createBudget(t, h, 1000)
	e := createExpense(t, h, b.ID, 50)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/"+e.ID+"/reimburse", nil)
	h.ReimburseExpense(rec, withChiParams(r, map[string]string{"id": e.ID}))

	requireStatus(t, rec, http.StatusConflict)
}

func TestExpenseCreate_UnknownBudget(t *testing.T) {
	t.Parallel()
	h := newFinanceHandler()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", jsonBody(t, dto.ExpenseRequest{
		BudgetID:    "no-such-budget",
		Description: "Job fair stand",
		Amount:      10,
		Currency:    "USD",
	}))
	r.Header.Set("Content-Type", "application/json")
	h.CreateExpense(rec, r)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestApprovedTotals_Endpoint(t *testing.T) {
	t.Parallel()
	h := newFinanceHandler()
	b := createBudget(t, h, 1000)
	e := createExpense(t, h, b.ID, 120)

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/"+e.ID+"/approve", nil)
	h.ApproveExpense(rec, withChiParams(r, map[string]string{"id": e.ID}))
	requireStatus(t, rec, http.StatusOK)

	rec = httptest.NewRecorder()
	h.ApprovedTotals(rec, httptest.NewRequest(http.MethodGet, "/api/v1/expenses/approved-totals", nil))

	requireStatus(t, rec, http.StatusOK)
	totals := decodeJSON[dto.CurrencyTotalsResponse](t, rec)
	if got := totals.Totals["USD"]; got != 120 {
		t.Errorf("Totals[USD] = %v, want 120", got)
	}
}
