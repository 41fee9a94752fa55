package queue

import (
	"errors"
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := New[int]()
	for i := 0; i < 10; i++ {
		if err := q.Push(i); err != nil {
			t.Fatalf("Push(%d) = %v", i, err)
		}
	}
	if q.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", q.Len())
	}

	var got []int
	n := q.Drain(func(v int) { got = append(got, v) })
	if n != 10 {
		t.Fatalf("Drain() = %d, want 10", n)
	}
	for i, v := range got {
		if v != i {
			t.Errorf("item %d = %d", i, v)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d", q.Len())
	}
	if n := q.Drain(func(int) { t.Error("unexpected item") }); n != 0 {
		t.Errorf("second Drain() = %d, want 0", n)
	}
}

func TestQueuePushDuringDrain(t *testing.T) {
	q := New[int]()
	_ = q.Push(1)

	var got []int
	q.Drain(func(v int) {
		got = append(got, v)
		_ = q.Push(v + 1)
	})
	if len(got) != 1 {
		t.Fatalf("first drain delivered %v", got)
	}
	q.Drain(func(v int) { got = append(got, v) })
	if len(got) != 2 || got[1] != 2 {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestQueueClosed(t *testing.T) {
	q := New[string]()
	_ = q.Push("a")
	q.Close()
	q.Close()

	if !q.Closed() {
		t.Fatal("Closed() = false")
	}
	if err := q.Push("b"); !errors.Is(err, ErrClosed) {
		t.Fatalf("Push after Close = %v, want ErrClosed", err)
	}

	var got []string
	q.Drain(func(s string) { got = append(got, s) })
	if len(got) != 1 || got[0] != "a" {
		t.Errorf("items queued before Close = %v, want [a]", got)
	}
}

func TestQueueReady(t *testing.T) {
	q := New[int]()
	select {
	case <-q.Ready():
		t.Fatal("Ready fired on empty queue")
	default:
	}

	_ = q.Push(1)
	_ = q.Push(2)
	select {
	case <-q.Ready():
	default:
		t.Fatal("Ready did not fire after Push")
	}
	// Notifications are coalesced.
	select {
	case <-q.Ready():
		t.Fatal("Ready fired twice for coalesced pushes")
	default:
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	type item struct{ producer, seq int }

	const producers, perProducer = 8, 1000
	q := New[item]()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if err := q.Push(item{p, i}); err != nil {
					t.Errorf("Push: %v", err)
					return
				}
			}
		}(p)
	}

	next := make([]int, producers)
	total := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	consume := func(it item) {
		if it.seq != next[it.producer] {
			t.Errorf("producer %d: got seq %d, want %d", it.producer, it.seq, next[it.producer])
		}
		next[it.producer] = it.seq + 1
		total++
	}
	for running := true; running; {
		select {
		case <-done:
			running = false
		case <-q.Ready():
		}
		q.Drain(consume)
	}
	q.Drain(consume)

	if total != producers*perProducer {
		t.Errorf("consumed %d items, want %d", total, producers*perProducer)
	}
}
