package appctx_test

import (
	"context"
	"errors"
	"testing"

	appctx "github.com/glowtours/backoffice/internal/app/context"
	"github.com/glowtours/backoffice/internal/domain"
)

// scriptedAction records execute/rollback calls into a shared trace.
type scriptedAction struct {
	name    string
	execErr error
	trace   *[]string
}

func (a *scriptedAction) Execute(context.Context) error {
	*a.trace = append(*a.trace, "exec:"+a.name)
	return a.execErr
}

func (a *scriptedAction) Rollback(context.Context) error {
	*a.trace = append(*a.trace, "rollback:"+a.name)
	return nil
}

func (a *scriptedAction) Description() string { return a.name }

func TestCommit_ExecutesInOrder(t *testing.T) {
	t.Parallel()

	var trace []string
	rc := appctx.New(context.Background())

	for _, name := range []string{"a", "b", "c"} {
		if err := rc.AddAction(&scriptedAction{name: name, trace: &trace}); err != nil {
			t.Fatalf("AddAction(%s) error: %v", name, err)
		}
	}

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error: %v", err)
	}

	want := []string{"exec:a", "exec:b", "exec:c"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
}

func TestCommit_RollsBackCompletedInReverseOrder(t *testing.T) {
	t.Parallel()

	var trace []string
	boom := errors.New("boom")
	rc := appctx.New(context.Background())

	_ = rc.AddAction(&scriptedAction{name: "a", trace: &trace})
	_ = rc.AddAction(&scriptedAction{name: "b", trace: &trace})
	_ = rc.AddAction(&scriptedAction{name: "c", execErr: boom, trace: &trace})

	err := rc.Commit(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Commit() error = %v, want wrapped boom", err)
	}

	want := []string{"exec:a", "exec:b", "exec:c", "rollback:b", "rollback:a"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
}

func TestCommit_Twice(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("first Commit() error: %v", err)
	}

	if err := rc.Commit(context.Background()); !errors.Is(err, appctx.ErrAlreadyCommitted) {
		t.Errorf("second Commit() error = %v, want ErrAlreadyCommitted", err)
	}
}

func TestAddAction_AfterCommit(t *testing.T) {
	t.Parallel()

	var trace []string
	rc := appctx.New(context.Background())
	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error: %v", err)
	}

	err := rc.AddAction(&scriptedAction{name: "late", trace: &trace})
	if !errors.Is(err, appctx.ErrAlreadyCommitted) {
		t.Errorf("AddAction() after commit error = %v, want ErrAlreadyCommitted", err)
	}
}

func TestAddAction_Nil(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	if err := rc.AddAction(nil); !errors.Is(err, appctx.ErrNilAction) {
		t.Errorf("AddAction(nil) error = %v, want ErrNilAction", err)
	}
}

func TestFromContext_Roundtrip(t *testing.T) {
	t.Parallel()

	rc := appctx.New(context.Background())
	ctx := appctx.WithRequestContext(context.Background(), rc)

	if got := appctx.FromContext(ctx); got != rc {
		t.Error("FromContext() did not return the stored RequestContext")
	}
}

func TestFromContext_FallsBackToFresh(t *testing.T) {
	t.Parallel()

	got := appctx.FromContext(context.Background())
	if got == nil {
		t.Fatal("FromContext() = nil without a stored RequestContext, want a fresh one")
	}

	// The fallback must be usable as a staging queue.
	var trace []string
	if err := got.AddAction(&scriptedAction{name: "x", trace: &trace}); err != nil {
		t.Fatalf("AddAction() on fallback error: %v", err)
	}
	if err := got.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() on fallback error: %v", err)
	}
}

var _ domain.Action = (*scriptedAction)(nil)
