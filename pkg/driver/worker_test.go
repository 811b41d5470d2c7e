package driver

import (
	"testing"

	"mexc/pkg/ast"
)

func TestWorkerCompiles(t *testing.T) {
	w := NewWorker(Options{})
	id := w.Submit("x = 1 + 2")
	w.Close()

	resp, ok := <-w.Responses()
	if !ok {
		t.Fatal("no response received")
	}
	if resp.RequestID != id {
		t.Errorf("response id = %d, want %d", resp.RequestID, id)
	}
	if resp.Result.Symbols["x"].Type != ast.Integer {
		t.Errorf("result symbols = %v, want x: Integer", resp.Result.Symbols)
	}
}

// Request ids increase monotonically and only the newest one is current;
// earlier responses are recognizably stale and simply discarded.
func TestWorkerStaleness(t *testing.T) {
	w := NewWorker(Options{})
	w.Submit("a = 1")
	w.Submit("b = 2")
	last := w.Submit("c = 3")
	w.Close()

	if w.Latest() != last {
		t.Fatalf("Latest() = %d, want %d", w.Latest(), last)
	}

	var kept *Response
	for resp := range w.Responses() {
		if w.Stale(resp) {
			continue
		}
		r := resp
		kept = &r
	}
	if kept == nil {
		t.Fatal("the latest response was never delivered")
	}
	if kept.RequestID != last {
		t.Errorf("kept response id = %d, want %d", kept.RequestID, last)
	}
	if _, ok := kept.Result.Symbols["c"]; !ok {
		t.Errorf("kept result symbols = %v, want c defined", kept.Result.Symbols)
	}
}

func TestWorkerIDsAreMonotonic(t *testing.T) {
	w := NewWorker(Options{})
	defer w.Close()
	prev := uint64(0)
	for i := 0; i < 5; i++ {
		id := w.Submit("1")
		if id <= prev {
			t.Fatalf("id %d issued after %d", id, prev)
		}
		prev = id
	}
	for i := 0; i < 5; i++ {
		<-w.Responses()
	}
}
