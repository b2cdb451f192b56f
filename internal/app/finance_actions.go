package app

import (
	"context"
	"fmt"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/finance"
	"github.com/glowtours/backoffice/internal/store"
)

// Compile-time checks that the staged mutations implement domain.Action.
var (
	_ domain.Action = (*replaceExpenseAction)(nil)
	_ domain.Action = (*debitBudgetAction)(nil)
)

// replaceExpenseAction swaps an expense record for an updated copy, keeping
// the previous value for rollback.
type replaceExpenseAction struct {
	store *store.Store
	prev  finance.Expense
	next  finance.Expense
}

func (a *replaceExpenseAction) Execute(context.Context) error {
	return a.store.Expenses.Update(a.next)
}

func (a *replaceExpenseAction) Rollback(context.Context) error {
	return a.store.Expenses.Update(a.prev)
}

func (a *replaceExpenseAction) Description() string {
	return fmt.Sprintf("set expense %s to %s", a.next.ID, a.next.Status)
}

// debitBudgetAction adds amount to a budget's Spent figure and re-derives
// Remaining. Rollback credits the same amount back.
type debitBudgetAction struct {
	store    *store.Store
	budgetID string
	amount   float64
}

func (a *debitBudgetAction) Execute(context.Context) error {
	return a.apply(a.amount)
}

func (a *debitBudgetAction) Rollback(context.Context) error {
	return a.apply(-a.amount)
}

func (a *debitBudgetAction) apply(delta float64) error {
	b, err := a.store.Budgets.Get(a.budgetID)
	if err != nil {
		return err
	}
	b.Spent += delta
	b.Remaining = b.Allocated - b.Spent
	b.UpdatedAt = time.Now().UTC()
	return a.store.Budgets.Update(b)
}

func (a *debitBudgetAction) Description() string {
	return fmt.Sprintf("debit budget %s by %.2f", a.budgetID, a.amount)
}
