package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func newBuiltinRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		t.Fatalf("RegisterBuiltins: %v", err)
	}
	return r
}

func TestInvokeGreet(t *testing.T) {
	r := newBuiltinRegistry(t)

	out, err := r.Invoke(context.Background(), CmdGreet, json.RawMessage(`{"name":"Squri"}`))
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}

	var got string
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if got != "Hello, Squri! Welcome to Squri!" {
		t.Errorf("unexpected greeting %q", got)
	}
}

func TestInvokeGreetWithoutArgs(t *testing.T) {
	r := newBuiltinRegistry(t)

	out, err := r.Invoke(context.Background(), CmdGreet, nil)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if string(out) != `"Hello, ! Welcome to Squri!"` {
		t.Errorf("unexpected result %s", out)
	}
}

func TestInvokeGreetInvalidArgs(t *testing.T) {
	r := newBuiltinRegistry(t)

	_, err := r.Invoke(context.Background(), CmdGreet, json.RawMessage(`{"name":42}`))
	if !errors.Is(err, ErrInvalidArgs) {
		t.Errorf("expected ErrInvalidArgs, got %v", err)
	}
}

func TestInvokeGetAppInfo(t *testing.T) {
	r := newBuiltinRegistry(t)

	out, err := r.Invoke(context.Background(), CmdGetAppInfo, nil)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}

	want := `{"name":"Squri","version":"0.1.0","description":"A unified codebase framework for desktop and mobile apps"}`
	if string(out) != want {
		t.Errorf("expected %s, got %s", want, out)
	}

	again, _ := r.Invoke(context.Background(), CmdGetAppInfo, nil)
	if string(again) != string(out) {
		t.Errorf("get_app_info is not idempotent: %s vs %s", out, again)
	}
}

func TestInvokeUnknown(t *testing.T) {
	r := newBuiltinRegistry(t)

	_, err := r.Invoke(context.Background(), "does_not_exist", nil)
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestRegisterRejects(t *testing.T) {
	r := newBuiltinRegistry(t)
	noop := func(context.Context, json.RawMessage) (any, error) { return nil, nil }

	if err := r.Register("", noop); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if err := r.Register(CmdGreet, noop); !errors.Is(err, ErrDuplicateCommand) {
		t.Errorf("expected ErrDuplicateCommand, got %v", err)
	}
	if err := r.Register("nil_handler", nil); err == nil {
		t.Error("expected error for nil handler")
	}
	if err := RegisterBuiltins(r); !errors.Is(err, ErrDuplicateCommand) {
		t.Errorf("registering builtins twice should fail, got %v", err)
	}
}

func TestInvokeWrapsHandlerError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	if err := r.Register("fails", func(context.Context, json.RawMessage) (any, error) {
		return nil, boom
	}); err != nil {
		t.Fatal(err)
	}

	_, err := r.Invoke(context.Background(), "fails", nil)
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped handler error, got %v", err)
	}
}

func TestInvokeUnencodableResult(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("chan", func(context.Context, json.RawMessage) (any, error) {
		return make(chan int), nil
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Invoke(context.Background(), "chan", nil); err == nil {
		t.Error("expected encode error")
	}
}

func TestNamesSorted(t *testing.T) {
	r := newBuiltinRegistry(t)
	names := r.Names()
	if len(names) != 2 || names[0] != CmdGetAppInfo || names[1] != CmdGreet {
		t.Errorf("unexpected names %v", names)
	}
}

func TestRegistryConcurrentInvoke(t *testing.T) {
	r := newBuiltinRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			args := json.RawMessage(fmt.Sprintf(`{"name":"user%d"}`, i))
			if _, err := r.Invoke(context.Background(), CmdGreet, args); err != nil {
				t.Errorf("Invoke: %v", err)
			}
		}(i)
		go func(i int) {
			defer wg.Done()
			noop := func(context.Context, json.RawMessage) (any, error) { return i, nil }
			if err := r.Register(fmt.Sprintf("extra_%d", i), noop); err != nil {
				t.Errorf("Register: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if got := len(r.Names()); got != 18 {
		t.Errorf("expected 18 commands, got %d", got)
	}
}

type observed struct {
	name string
	err  error
}

type recordingObserver struct {
	mu    sync.Mutex
	calls []observed
}

func (o *recordingObserver) ObserveCommand(name string, _ time.Duration, err error) {
	o.mu.Lock()
	o.calls = append(o.calls, observed{name: name, err: err})
	o.mu.Unlock()
}

func TestObserverSeesInvocations(t *testing.T) {
	r := newBuiltinRegistry(t)
	obs := &recordingObserver{}
	r.SetObserver(obs)

	if _, err := r.Invoke(context.Background(), CmdGreet, json.RawMessage(`{"name":"Ada"}`)); err != nil {
		t.Fatal(err)
	}
	_, _ = r.Invoke(context.Background(), CmdGreet, json.RawMessage(`"bad"`))
	_, _ = r.Invoke(context.Background(), "missing", nil)

	if len(obs.calls) != 2 {
		t.Fatalf("expected 2 observed calls (unknown commands are not observed), got %d", len(obs.calls))
	}
	if obs.calls[0].name != CmdGreet || obs.calls[0].err != nil {
		t.Errorf("unexpected first call %+v", obs.calls[0])
	}
	if !errors.Is(obs.calls[1].err, ErrInvalidArgs) {
		t.Errorf("expected ErrInvalidArgs to be observed, got %v", obs.calls[1].err)
	}

	r.SetObserver(nil)
	if _, err := r.Invoke(context.Background(), CmdGetAppInfo, nil); err != nil {
		t.Fatal(err)
	}
	if len(obs.calls) != 2 {
		t.Error("removed observer should not be called")
	}
}
