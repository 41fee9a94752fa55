package sketch

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/sketch/internal/batch"
	"github.com/gogpu/sketch/internal/queue"
)

func newTestContext(width, height uint32) (*Context, *queue.Queue[drawEvent]) {
	q := queue.New[drawEvent]()
	return newContext(width, height, q), q
}

func drained(q *queue.Queue[drawEvent]) []drawEvent {
	var out []drawEvent
	q.Drain(func(ev drawEvent) { out = append(out, ev) })
	return out
}

func TestContextSize(t *testing.T) {
	ctx, _ := newTestContext(800, 600)
	if ctx.Width() != 800 || ctx.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", ctx.Width(), ctx.Height())
	}
}

func TestContextDrawPointConverts(t *testing.T) {
	ctx, q := newTestContext(800, 600)
	ctx.DrawPoint(Px(20, 20), Red)

	evs := drained(q)
	if len(evs) != 1 {
		t.Fatalf("posted %d events, want 1", len(evs))
	}
	ev := evs[0]
	if ev.kind != batch.PrimitivePoint {
		t.Fatalf("kind = %v, want point", ev.kind)
	}
	v := ev.Vertices()
	if len(v) != 1 {
		t.Fatalf("len(Vertices()) = %d, want 1", len(v))
	}
	if !approx(v[0].Position[0], -0.95) || !approx(v[0].Position[1], 0.93333) {
		t.Errorf("position = %v, want (-0.95, 0.9333)", v[0].Position)
	}
	if v[0].Color != [4]float32{1, 0, 0, 1} {
		t.Errorf("color = %v, want (1, 0, 0, 1)", v[0].Color)
	}
}

func TestContextDrawLineAndTriangle(t *testing.T) {
	ctx, q := newTestContext(100, 100)
	ctx.DrawLine(Px(0, 0), Px(100, 100), Green)
	ctx.DrawTriangle(Px(0, 100), Px(50, 0), Px(100, 100), RGBA(0, 0, 1, 0.5))

	evs := drained(q)
	if len(evs) != 2 {
		t.Fatalf("posted %d events, want 2", len(evs))
	}

	line := evs[0].Vertices()
	if evs[0].kind != batch.PrimitiveLine || len(line) != 2 {
		t.Fatalf("first event = %v with %d vertices, want line with 2", evs[0].kind, len(line))
	}
	if line[0].Position != [2]float32{-1, 1} || line[1].Position != [2]float32{1, -1} {
		t.Errorf("line = %v, %v", line[0].Position, line[1].Position)
	}

	tri := evs[1].Vertices()
	if evs[1].kind != batch.PrimitiveTriangle || len(tri) != 3 {
		t.Fatalf("second event = %v with %d vertices, want triangle with 3", evs[1].kind, len(tri))
	}
	want := [][2]float32{{-1, -1}, {0, 1}, {1, -1}}
	for i, v := range tri {
		if v.Position != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, v.Position, want[i])
		}
		if v.Color != [4]float32{0, 0, 1, 0.5} {
			t.Errorf("vertex %d color = %v", i, v.Color)
		}
	}
}

func TestContextTryDrawAfterClose(t *testing.T) {
	ctx, q := newTestContext(10, 10)
	q.Close()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"point", func() error { return ctx.TryDrawPoint(Px(1, 1), Red) }},
		{"line", func() error { return ctx.TryDrawLine(Px(1, 1), Px(2, 2), Red) }},
		{"triangle", func() error { return ctx.TryDrawTriangle(Px(1, 1), Px(2, 2), Px(3, 1), Red) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, ErrCanvasClosed) {
				t.Errorf("err = %v, want ErrCanvasClosed", err)
			}
		})
	}
}

func TestContextDrawAfterClosePanics(t *testing.T) {
	ctx, q := newTestContext(10, 10)
	q.Close()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrCanvasClosed) {
			t.Errorf("recovered %v, want an error wrapping ErrCanvasClosed", r)
		}
	}()
	ctx.DrawPoint(Px(1, 1), Red)
	t.Error("DrawPoint after close did not panic")
}

func TestContextConcurrentPosting(t *testing.T) {
	const producers, perProducer = 4, 250
	ctx, q := newTestContext(1000, 1000)

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(p uint32) {
			defer wg.Done()
			for i := range uint32(perProducer) {
				ctx.DrawPoint(Px(i, p), White)
			}
		}(uint32(p))
	}
	wg.Wait()

	// Each producer's points arrive in post order.
	last := make(map[float32]float32)
	n := 0
	q.Drain(func(ev drawEvent) {
		n++
		pos := ev.Vertices()[0].Position
		if prev, ok := last[pos[1]]; ok && pos[0] <= prev {
			t.Fatalf("producer at y=%v out of order: %v after %v", pos[1], pos[0], prev)
		}
		last[pos[1]] = pos[0]
	})
	if n != producers*perProducer {
		t.Errorf("received %d events, want %d", n, producers*perProducer)
	}
}
