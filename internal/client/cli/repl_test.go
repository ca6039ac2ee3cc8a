package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls   []string
	lastArg string
}

func (f *fakeExec) Add(ctx context.Context, paths []string) error {
	f.calls = append(f.calls, "add")
	f.lastArg = strings.Join(paths, " ")
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Remove(ctx context.Context, arg string) error {
	f.calls = append(f.calls, "remove")
	f.lastArg = arg
	return nil
}
func (f *fakeExec) Clear(ctx context.Context) error { f.calls = append(f.calls, "clear"); return nil }
func (f *fakeExec) Upload(ctx context.Context, label string) error {
	f.calls = append(f.calls, "upload")
	f.lastArg = label
	return nil
}
func (f *fakeExec) Search(ctx context.Context, query string) error {
	f.calls = append(f.calls, "search")
	f.lastArg = query
	return nil
}
func (f *fakeExec) SetKey(ctx context.Context) error {
	f.calls = append(f.calls, "setkey")
	return nil
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silencePrintln(t)

	input := strings.Join([]string{
		"help",
		"add cat.png dog.jpg",
		"list",
		"remove 2",
		"upload summer vacation",
		"search dogs in a park",
		"setkey",
		"clear",
		"nonsense",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader(input)))

	assert.Equal(t, []string{"add", "list", "remove", "upload", "search", "setkey", "clear"}, exec.calls)
}

func TestRunREPL_JoinsMultiWordArgs(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" },
		bufio.NewScanner(strings.NewReader("search dogs in a park\nquit\n")))

	assert.Equal(t, "dogs in a park", exec.lastArg)
}

func TestRunREPL_UsageLinesMakeNoCalls(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" },
		bufio.NewScanner(strings.NewReader("add\nremove\nremove 1 2\n\nquit\n")))

	assert.Empty(t, exec.calls)
}

func TestRunREPL_Aliases(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" },
		bufio.NewScanner(strings.NewReader("l\nrm 1\nup\ns cats\nexit\n")))

	assert.Equal(t, []string{"list", "remove", "upload", "search"}, exec.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	silencePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" },
		bufio.NewScanner(strings.NewReader("list\n")))

	assert.Equal(t, []string{"list"}, exec.calls)
}
