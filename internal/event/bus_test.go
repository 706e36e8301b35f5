package event

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func collect(t *testing.T, b *Bus, name string) (*[]Event, *sync.Mutex) {
	t.Helper()
	var mu sync.Mutex
	got := &[]Event{}
	b.Listen(name, func(ev Event) {
		mu.Lock()
		*got = append(*got, ev)
		mu.Unlock()
	})
	return got, &mu
}

func TestEmitDeliversInOrder(t *testing.T) {
	b := New(16)
	got, mu := collect(t, b, "menu-navigate")

	for _, route := range []string{"home", "about", "settings", "profile"} {
		if err := b.Emit("menu-navigate", route); err != nil {
			t.Fatalf("Emit: %v", err)
		}
	}
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	want := []string{"home", "about", "settings", "profile"}
	if len(*got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(*got))
	}
	for i, ev := range *got {
		var route string
		if err := ev.Decode(&route); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if route != want[i] {
			t.Errorf("event %d: expected %q, got %q", i, want[i], route)
		}
	}
}

func TestEmitNilPayload(t *testing.T) {
	b := New(4)
	got, mu := collect(t, b, "menu-new")

	if err := b.Emit("menu-new", nil); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(*got) != 1 {
		t.Fatalf("expected one event, got %d", len(*got))
	}
	if string((*got)[0].Payload) != "null" {
		t.Errorf("expected null payload, got %s", (*got)[0].Payload)
	}
}

func TestListenersOnlySeeTheirEvent(t *testing.T) {
	b := New(4)
	saves, mu := collect(t, b, "menu-save")

	_ = b.Emit("menu-open", nil)
	_ = b.Emit("menu-save", nil)
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(*saves) != 1 || (*saves)[0].Name != "menu-save" {
		t.Errorf("expected only menu-save, got %v", *saves)
	}
}

func TestUnlisten(t *testing.T) {
	b := New(4)
	calls := 0
	var mu sync.Mutex
	unlisten := b.Listen("tick", func(Event) {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	unlisten()
	unlisten()

	_ = b.Emit("tick", 1)
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	if calls != 0 {
		t.Errorf("expected no calls after unlisten, got %d", calls)
	}
}

func TestEmitErrors(t *testing.T) {
	b := New(1)

	if err := b.Emit("", nil); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if err := b.Emit("bad", make(chan int)); err == nil {
		t.Error("expected encode error")
	}

	b.Close()
	if err := b.Emit("late", nil); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	b.Close()
}

func TestEmitNeverBlocks(t *testing.T) {
	b := New(1)
	release := make(chan struct{})
	b.Listen("slow", func(Event) { <-release })

	var full error
	deadline := time.After(2 * time.Second)
	for full == nil {
		select {
		case <-deadline:
			t.Fatal("buffer never filled")
		default:
		}
		full = b.Emit("slow", nil)
	}
	if !errors.Is(full, ErrBufferFull) {
		t.Errorf("expected ErrBufferFull, got %v", full)
	}

	close(release)
	b.Close()
}

func TestListenerPanicIsRecovered(t *testing.T) {
	b := New(4)
	b.Listen("boom", func(Event) { panic("listener bug") })
	got, mu := collect(t, b, "boom")

	_ = b.Emit("boom", nil)
	_ = b.Emit("boom", nil)
	b.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(*got) != 2 {
		t.Errorf("expected later listeners to keep receiving, got %d", len(*got))
	}
}

type outcomeRecorder struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func (r *outcomeRecorder) ObserveEvent(_, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.outcomes == nil {
		r.outcomes = make(map[string]int)
	}
	r.outcomes[outcome]++
}

func TestObserverOutcomes(t *testing.T) {
	b := New(1)
	rec := &outcomeRecorder{}
	b.SetObserver(rec)

	block := make(chan struct{})
	b.Listen("slow", func(Event) { <-block })
	b.Listen("boom", func(Event) { panic("boom") })

	if err := b.Emit("slow", nil); err != nil {
		t.Fatal(err)
	}
	// Wait until the worker has taken "slow" off the queue.
	deadline := time.Now().Add(time.Second)
	for len(b.queue) != 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if err := b.Emit("boom", nil); err != nil {
		t.Fatal(err)
	}
	if err := b.Emit("boom", nil); !errors.Is(err, ErrBufferFull) {
		t.Fatalf("expected ErrBufferFull, got %v", err)
	}
	close(block)
	b.Close()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	want := map[string]int{
		OutcomeQueued:    2,
		OutcomeDropped:   1,
		OutcomeDelivered: 1,
		OutcomePanicked:  1,
	}
	for outcome, n := range want {
		if rec.outcomes[outcome] != n {
			t.Errorf("%s: got %d, want %d", outcome, rec.outcomes[outcome], n)
		}
	}
}
