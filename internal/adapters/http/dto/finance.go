package dto

import (
	"time"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/billing"
	"github.com/glowtours/backoffice/internal/domain/finance"
)

// LineItemRequest is a single invoice line in an InvoiceRequest. Amount is
// computed by the monetary snapshot at creation, never submitted.
type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// InvoiceRequest is the JSON body for creating or replacing an invoice.
// Status and the monetary snapshot (subtotal, tax amount, total) are owned
// by the billing workflow and never writable here.
type InvoiceRequest struct {
	Number    string            `json:"number"`
	ClientID  string            `json:"client_id"`
	Currency  string            `json:"currency"`
	LineItems []LineItemRequest `json:"line_items"`
	TaxRate   float64           `json:"tax_rate"`
	IssuedAt  string            `json:"issued_at,omitempty"`
	DueAt     string            `json:"due_at,omitempty"`
}

// ToDomain converts the request to a domain Invoice. Totals are left zero
// for the service to snapshot.
func (r *InvoiceRequest) ToDomain() *billing.Invoice {
	items := make([]billing.LineItem, len(r.LineItems))
	for i, li := range r.LineItems {
		items[i] = billing.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
		}
	}
	issuedAt, _ := parseDate(r.IssuedAt)
	dueAt, _ := parseDate(r.DueAt)
	return &billing.Invoice{
		Number:    r.Number,
		ClientID:  r.ClientID,
		Currency:  domain.Currency(r.Currency),
		LineItems: items,
		TaxRate:   r.TaxRate,
		IssuedAt:  issuedAt,
		DueAt:     dueAt,
		Status:    billing.StatusDraft,
	}
}

// Validate checks the request against the invoice business rules, plus the
// date formats.
func (r *InvoiceRequest) Validate() error {
	fields := make(map[string]string)
	if r.IssuedAt != "" {
		if _, ok := parseDate(r.IssuedAt); !ok {
			fields["issued_at"] = "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"
		}
	}
	if r.DueAt != "" {
		if _, ok := parseDate(r.DueAt); !ok {
			fields["due_at"] = "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"
		}
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return r.ToDomain().Validate()
}

// LineItemResponse is a single invoice line in HTTP responses.
type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// InvoiceResponse represents an invoice in HTTP responses.
type InvoiceResponse struct {
	ID          string             `json:"id"`
	Number      string             `json:"number"`
	ClientID    string             `json:"client_id"`
	Currency    string             `json:"currency"`
	LineItems   []LineItemResponse `json:"line_items"`
	TaxRate     float64            `json:"tax_rate"`
	Subtotal    float64            `json:"subtotal"`
	TaxAmount   float64            `json:"tax_amount"`
	TotalAmount float64            `json:"total_amount"`
	IssuedAt    string             `json:"issued_at,omitempty"`
	DueAt       string             `json:"due_at,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

// ToInvoiceResponse converts a domain Invoice to an HTTP response DTO.
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, len(inv.LineItems))
	for i, li := range inv.LineItems {
		items[i] = LineItemResponse{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Amount:      li.Amount,
		}
	}
	return InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		ClientID:    inv.ClientID,
		Currency:    inv.Currency.String(),
		LineItems:   items,
		TaxRate:     inv.TaxRate,
		Subtotal:    inv.Subtotal,
		TaxAmount:   inv.TaxAmount,
		TotalAmount: inv.TotalAmount,
		IssuedAt:    formatDate(inv.IssuedAt),
		DueAt:       formatDate(inv.DueAt),
		Status:      inv.Status.String(),
		CreatedAt:   inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   inv.UpdatedAt.Format(time.RFC3339),
	}
}

// InvoiceListResponse represents a list of invoices in HTTP responses.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Count    int               `json:"count"`
}

// ToInvoiceListResponse converts a slice of domain Invoices to an HTTP list
// response DTO.
func ToInvoiceListResponse(invoices []billing.Invoice) InvoiceListResponse {
	items := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		items[i] = ToInvoiceResponse(&invoices[i])
	}
	return InvoiceListResponse{Invoices: items, Count: len(items)}
}

// CurrencyTotalsResponse reports per-currency sums. Currencies are never
// merged into a single figure.
type CurrencyTotalsResponse struct {
	Totals map[string]float64 `json:"totals"`
}

// ToCurrencyTotalsResponse converts a per-currency sum map to an HTTP
// response DTO.
func ToCurrencyTotalsResponse(totals map[domain.Currency]float64) CurrencyTotalsResponse {
	out := make(map[string]float64, len(totals))
	for cur, v := range totals {
		out[cur.String()] = v
	}
	return CurrencyTotalsResponse{Totals: out}
}

// BudgetRequest is the JSON body for creating or replacing a budget.
// Spent and Remaining are owned by the expense approval flow and never
// writable here.
type BudgetRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Currency  string  `json:"currency"`
	Allocated float64 `json:"allocated"`
}

// ToDomain converts the request to a domain Budget. Spent and Remaining are
// left for the service to derive.
func (r *BudgetRequest) ToDomain() *finance.Budget {
	return &finance.Budget{
		Name:      r.Name,
		Category:  r.Category,
		Currency:  domain.Currency(r.Currency),
		Allocated: r.Allocated,
	}
}

// Validate checks the request against the budget business rules.
func (r *BudgetRequest) Validate() error {
	return r.ToDomain().Validate()
}

// BudgetResponse represents a budget in HTTP responses.
type BudgetResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Currency  string  `json:"currency"`
	Allocated float64 `json:"allocated"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// ToBudgetResponse converts a domain Budget to an HTTP response DTO.
func ToBudgetResponse(b *finance.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID,
		Name:      b.Name,
		Category:  b.Category,
		Currency:  b.Currency.String(),
		Allocated: b.Allocated,
		Spent:     b.Spent,
		Remaining: b.Remaining,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

// BudgetListResponse represents a list of budgets in HTTP responses.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Count   int              `json:"count"`
}

// ToBudgetListResponse converts a slice of domain Budgets to an HTTP list
// response DTO.
func ToBudgetListResponse(budgets []finance.Budget) BudgetListResponse {
	items := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		items[i] = ToBudgetResponse(&budgets[i])
	}
	return BudgetListResponse{Budgets: items, Count: len(items)}
}

// ExpenseRequest is the JSON body for submitting an expense. Status and
// PolicyViolation are assigned by the policy check at creation.
type ExpenseRequest struct {
	BudgetID    string  `json:"budget_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	IncurredAt  string  `json:"incurred_at,omitempty"`
	Receipt     string  `json:"receipt,omitempty"`
}

// ToDomain converts the request to a domain Expense. Status is left for the
// service's policy check to assign.
func (r *ExpenseRequest) ToDomain() *finance.Expense {
	incurredAt, _ := parseDate(r.IncurredAt)
	return &finance.Expense{
		BudgetID:    r.BudgetID,
		Description: r.Description,
		Amount:      r.Amount,
		Currency:    domain.Currency(r.Currency),
		IncurredAt:  incurredAt,
		Receipt:     r.Receipt,
		Status:      finance.ExpensePending,
	}
}

// Validate checks the request against the expense business rules, plus the
// date format of incurred_at.
func (r *ExpenseRequest) Validate() error {
	if r.IncurredAt != "" {
		if _, ok := parseDate(r.IncurredAt); !ok {
			return &domain.ValidationError{Fields: map[string]string{
				"incurred_at": "must be a date (YYYY-MM-DD) or RFC 3339 timestamp",
			}}
		}
	}
	return r.ToDomain().Validate()
}

// ExpenseResponse represents an expense in HTTP responses.
type ExpenseResponse struct {
	ID              string  `json:"id"`
	BudgetID        string  `json:"budget_id"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	IncurredAt      string  `json:"incurred_at"`
	Receipt         string  `json:"receipt,omitempty"`
	Status          string  `json:"status"`
	PolicyViolation string  `json:"policy_violation,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ToExpenseResponse converts a domain Expense to an HTTP response DTO.
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:              e.ID,
		BudgetID:        e.BudgetID,
		Description:     e.Description,
		Amount:          e.Amount,
		Currency:        e.Currency.String(),
		IncurredAt:      formatDate(e.IncurredAt),
		Receipt:         e.Receipt,
		Status:          e.Status.String(),
		PolicyViolation: e.PolicyViolation,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       e.UpdatedAt.Format(time.RFC3339),
	}
}

// ExpenseListResponse represents a list of expenses in HTTP responses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
}

// ToExpenseListResponse converts a slice of domain Expenses to an HTTP list
// response DTO.
func ToExpenseListResponse(expenses []finance.Expense) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		items[i] = ToExpenseResponse(&expenses[i])
	}
	return ExpenseListResponse{Expenses: items, Count: len(items)}
}
