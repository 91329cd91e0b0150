package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
	pages []int
}

func (f *fakeExec) Status(ctx context.Context) error {
	f.calls = append(f.calls, "status")
	return nil
}
func (f *fakeExec) Sale(ctx context.Context) error {
	f.calls = append(f.calls, "sale")
	return nil
}
func (f *fakeExec) Pending(ctx context.Context) error {
	f.calls = append(f.calls, "pending")
	return nil
}
func (f *fakeExec) Sync(ctx context.Context) error {
	f.calls = append(f.calls, "sync")
	return nil
}
func (f *fakeExec) Products(ctx context.Context, page int) error {
	f.calls = append(f.calls, "products")
	f.pages = append(f.pages, page)
	return nil
}
func (f *fakeExec) Inventory(ctx context.Context, page int) error {
	f.calls = append(f.calls, "inventory")
	f.pages = append(f.pages, page)
	return nil
}
func (f *fakeExec) Sessions(ctx context.Context) error {
	f.calls = append(f.calls, "sessions")
	return nil
}
func (f *fakeExec) ClearCache(ctx context.Context) error {
	f.calls = append(f.calls, "clear-cache")
	return nil
}

func TestRunREPL_DispatchAndExit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"status",
		"sale",
		"pending",
		"sync",
		"products 3",
		"inventory",
		"sessions",
		"clear-cache",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "(offline)" }, sc)

	wantOrder := []string{"status", "sale", "pending", "sync", "products", "inventory", "sessions", "clear-cache"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("unexpected calls: %+v", exec.calls)
	}
	for i, c := range exec.calls {
		if c != wantOrder[i] {
			t.Fatalf("commands order mismatch: got %v, want %v", exec.calls, wantOrder)
		}
	}
	if len(exec.pages) != 2 || exec.pages[0] != 3 || exec.pages[1] != 1 {
		t.Fatalf("unexpected page args: %v", exec.pages)
	}
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "(online)" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestPageArg(t *testing.T) {
	if got := pageArg(nil); got != 1 {
		t.Fatalf("empty args: got %d", got)
	}
	if got := pageArg([]string{"5"}); got != 5 {
		t.Fatalf("numeric arg: got %d", got)
	}
	if got := pageArg([]string{"zero"}); got != 1 {
		t.Fatalf("garbage arg: got %d", got)
	}
	if got := pageArg([]string{"-2"}); got != 1 {
		t.Fatalf("negative arg: got %d", got)
	}
}
