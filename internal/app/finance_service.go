package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	appctx "github.com/glowtours/backoffice/internal/app/context"
	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/attachment"
	"github.com/glowtours/backoffice/internal/domain/finance"
	"github.com/glowtours/backoffice/internal/ports"
	"github.com/glowtours/backoffice/internal/store"
)

// Compile-time check that FinanceService implements ports.FinanceService.
var _ ports.FinanceService = (*FinanceService)(nil)

// FinanceService implements ports.FinanceService. Expense approval is the
// one flow in the system that writes two collections together, so it stages
// both writes through appctx and rolls back on partial failure.
type FinanceService struct {
	store     *store.Store
	logger    *slog.Logger
	maxAttach int
}

// NewFinanceService creates a FinanceService. maxAttachBytes caps the
// decoded size of receipt attachments; zero disables the cap.
func NewFinanceService(st *store.Store, logger *slog.Logger, maxAttachBytes int) *FinanceService {
	return &FinanceService{store: st, logger: logger, maxAttach: maxAttachBytes}
}

// ListBudgets returns budgets matching the search term, in insertion order.
func (s *FinanceService) ListBudgets(_ context.Context, search string) ([]finance.Budget, error) {
	all := s.store.Budgets.List()
	return store.Filter(all, func(b finance.Budget) bool {
		return store.MatchFold(search, b.Name, b.Category)
	}), nil
}

// GetBudget returns a single budget by id.
func (s *FinanceService) GetBudget(_ context.Context, id string) (*finance.Budget, error) {
	b, err := s.store.Budgets.Get(id)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBudget validates and stores a new budget with Remaining derived
// from the allocation.
func (s *FinanceService) CreateBudget(ctx context.Context, b *finance.Budget) (*finance.Budget, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b.ID = s.store.NewID()
	b.Remaining = b.Allocated - b.Spent
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := s.store.Budgets.Add(*b); err != nil {
		s.logger.ErrorContext(ctx, "failed to create budget",
			slog.String("operation", "CreateBudget"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "budget created",
		slog.String("budget_id", b.ID),
		slog.String("currency", b.Currency.String()),
		slog.Float64("allocated", b.Allocated),
	)
	return b, nil
}

// UpdateBudget replaces a budget's fields, keeping the Spent figure owned by
// the approval flow and re-deriving Remaining.
func (s *FinanceService) UpdateBudget(ctx context.Context, id string, b *finance.Budget) (*finance.Budget, error) {
	existing, err := s.store.Budgets.Get(id)
	if err != nil {
		return nil, err
	}

	b.ID = existing.ID
	b.Spent = existing.Spent
	b.Remaining = b.Allocated - existing.Spent
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = time.Now().UTC()

	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Budgets.Update(*b); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "budget updated", slog.String("budget_id", id))
	return b, nil
}

// DeleteBudget removes a budget by id. Expenses referencing it keep their
// BudgetID, mirroring the other weak references in the model.
func (s *FinanceService) DeleteBudget(ctx context.Context, id string) error {
	if err := s.store.Budgets.Remove(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "budget deleted", slog.String("budget_id", id))
	return nil
}

// ListExpenses returns expenses matching the search term, in insertion order.
func (s *FinanceService) ListExpenses(_ context.Context, search string) ([]finance.Expense, error) {
	all := s.store.Expenses.List()
	return store.Filter(all, func(e finance.Expense) bool {
		return store.MatchFold(search, e.Description, e.BudgetID, e.PolicyViolation)
	}), nil
}

// GetExpense returns a single expense by id.
func (s *FinanceService) GetExpense(_ context.Context, id string) (*finance.Expense, error) {
	e, err := s.store.Expenses.Get(id)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateExpense stores a new expense. The policy check runs exactly once,
// here: if the amount would push the linked budget past its allocation the
// expense is created flagged with PolicyViolation populated, otherwise
// pending. The budget itself is not debited until approval.
func (s *FinanceService) CreateExpense(ctx context.Context, e *finance.Expense) (*finance.Expense, error) {
	e.Status = finance.ExpensePending
	e.PolicyViolation = ""
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := attachment.Validate(e.Receipt, attachment.KindDocument, s.maxAttach); err != nil {
		return nil, err
	}

	b, err := s.store.Budgets.Get(e.BudgetID)
	if err != nil {
		return nil, fmt.Errorf("budget %s: %w", e.BudgetID, domain.ErrNotFound)
	}

	if b.WouldExceed(e.Amount) {
		e.Status = finance.ExpenseFlagged
		e.PolicyViolation = fmt.Sprintf(
			"amount %.2f exceeds remaining allocation of budget %q (%.2f of %.2f spent)",
			e.Amount, b.Name, b.Spent, b.Allocated,
		)
	}

	now := time.Now().UTC()
	e.ID = s.store.NewID()
	if e.IncurredAt.IsZero() {
		e.IncurredAt = now
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := s.store.Expenses.Add(*e); err != nil {
		s.logger.ErrorContext(ctx, "failed to create expense",
			slog.String("operation", "CreateExpense"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "expense created",
		slog.String("expense_id", e.ID),
		slog.String("budget_id", e.BudgetID),
		slog.String("status", e.Status.String()),
	)
	return e, nil
}

// DeleteExpense removes an expense by id.
func (s *FinanceService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.store.Expenses.Remove(id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "expense deleted", slog.String("expense_id", id))
	return nil
}

// ApproveExpense marks a pending or flagged expense approved and debits the
// linked budget. Both writes are staged and committed together; if the
// budget debit fails the status change is rolled back.
func (s *FinanceService) ApproveExpense(ctx context.Context, id string) (*finance.Expense, error) {
	e, err := s.store.Expenses.Get(id)
	if err != nil {
		return nil, err
	}
	if !e.Status.CanTransition(finance.ExpenseApproved) {
		return nil, fmt.Errorf("expense %s is %s, cannot be approved: %w",
			id, e.Status, domain.ErrConflict)
	}

	b, err := s.store.Budgets.Get(e.BudgetID)
	if err != nil {
		return nil, fmt.Errorf("budget %s: %w", e.BudgetID, domain.ErrNotFound)
	}

	updated := e
	updated.Status = finance.ExpenseApproved
	updated.UpdatedAt = time.Now().UTC()

	rc := appctx.FromContext(ctx)
	if err := rc.AddAction(&replaceExpenseAction{store: s.store, prev: e, next: updated}); err != nil {
		return nil, err
	}
	if err := rc.AddAction(&debitBudgetAction{store: s.store, budgetID: b.ID, amount: e.Amount}); err != nil {
		return nil, err
	}
	if err := rc.Commit(ctx); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "expense approved",
		slog.String("operation", "ApproveExpense"),
		slog.String("expense_id", id),
		slog.String("budget_id", b.ID),
		slog.Float64("amount", e.Amount),
	)
	return &updated, nil
}

// RejectExpense marks a pending or flagged expense rejected.
func (s *FinanceService) RejectExpense(ctx context.Context, id string) (*finance.Expense, error) {
	return s.transition(ctx, id, finance.ExpenseRejected, "RejectExpense")
}

// ReimburseExpense marks an approved expense reimbursed.
func (s *FinanceService) ReimburseExpense(ctx context.Context, id string) (*finance.Expense, error) {
	return s.transition(ctx, id, finance.ExpenseReimbursed, "ReimburseExpense")
}

// ApprovedTotals sums approved and reimbursed expense amounts, one figure
// per currency.
func (s *FinanceService) ApprovedTotals(_ context.Context) (map[domain.Currency]float64, error) {
	totals := make(map[domain.Currency]float64)
	for _, e := range s.store.Expenses.List() {
		if e.Status == finance.ExpenseApproved || e.Status == finance.ExpenseReimbursed {
			totals[e.Currency] += e.Amount
		}
	}
	return totals, nil
}

// transition applies one single-collection approval step.
func (s *FinanceService) transition(ctx context.Context, id string, next finance.ExpenseStatus, operation string) (*finance.Expense, error) {
	e, err := s.store.Expenses.Get(id)
	if err != nil {
		return nil, err
	}

	if !e.Status.CanTransition(next) {
		return nil, fmt.Errorf("expense %s is %s, cannot become %s: %w",
			id, e.Status, next, domain.ErrConflict)
	}

	e.Status = next
	e.UpdatedAt = time.Now().UTC()

	if err := s.store.Expenses.Update(e); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "expense status changed",
		slog.String("operation", operation),
		slog.String("expense_id", id),
		slog.String("status", next.String()),
	)
	return &e, nil
}
