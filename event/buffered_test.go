package event

import (
	"fmt"
	"sync"
	"testing"
)

func TestBufferedSink_CapturesHistory(t *testing.T) {
	sink := NewBufferedSink()

	sink.Emit(Event{Demo: "beverage", Step: 1, Op: "boil", Msg: "boiling water"})
	sink.Emit(Event{Demo: "beverage", Step: 2, Op: "brew", Msg: "brewing tea"})
	sink.Emit(Event{Demo: "vehicles", Step: 1, Op: "build", Msg: "vehicle built"})

	history := sink.History("beverage")
	if len(history) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(history))
	}
	if history[0].Msg != "boiling water" || history[1].Msg != "brewing tea" {
		t.Errorf("history out of order: %v", history)
	}
}

func TestBufferedSink_UnknownDemoReturnsEmpty(t *testing.T) {
	sink := NewBufferedSink()

	history := sink.History("nope")
	if history == nil {
		t.Fatal("History returned nil, want empty slice")
	}
	if len(history) != 0 {
		t.Errorf("len(history) = %d, want 0", len(history))
	}
}

func TestBufferedSink_Filter(t *testing.T) {
	sink := NewBufferedSink()

	for i := 1; i <= 5; i++ {
		op := "brew"
		if i%2 == 0 {
			op = "pour"
		}
		sink.Emit(Event{Demo: "beverage", Step: i, Op: op, Msg: "step"})
	}

	t.Run("filter by op", func(t *testing.T) {
		got := sink.HistoryWithFilter("beverage", HistoryFilter{Op: "pour"})
		if len(got) != 2 {
			t.Errorf("len = %d, want 2", len(got))
		}
	})

	t.Run("filter by step range", func(t *testing.T) {
		minStep, maxStep := 2, 4
		got := sink.HistoryWithFilter("beverage", HistoryFilter{MinStep: &minStep, MaxStep: &maxStep})
		if len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
		for _, e := range got {
			if e.Step < 2 || e.Step > 4 {
				t.Errorf("step %d outside filter range", e.Step)
			}
		}
	})

	t.Run("combined filters use AND logic", func(t *testing.T) {
		minStep := 3
		got := sink.HistoryWithFilter("beverage", HistoryFilter{Op: "pour", MinStep: &minStep})
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].Step != 4 {
			t.Errorf("step = %d, want 4", got[0].Step)
		}
	})

	t.Run("empty filter returns everything", func(t *testing.T) {
		got := sink.HistoryWithFilter("beverage", HistoryFilter{})
		if len(got) != 5 {
			t.Errorf("len = %d, want 5", len(got))
		}
	})
}

func TestBufferedSink_Clear(t *testing.T) {
	sink := NewBufferedSink()
	sink.Emit(Event{Demo: "a", Step: 1, Msg: "x"})
	sink.Emit(Event{Demo: "b", Step: 1, Msg: "y"})

	sink.Clear("a")
	if len(sink.History("a")) != 0 {
		t.Error("demo a should be cleared")
	}
	if len(sink.History("b")) != 1 {
		t.Error("demo b should be untouched")
	}

	sink.Clear("")
	if len(sink.History("b")) != 0 {
		t.Error("all demos should be cleared")
	}
}

func TestBufferedSink_ConcurrentEmit(t *testing.T) {
	sink := NewBufferedSink()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sink.Emit(Event{Demo: "stress", Step: j, Msg: fmt.Sprintf("g%d", n)})
			}
		}(i)
	}
	wg.Wait()

	if got := len(sink.History("stress")); got != 1000 {
		t.Errorf("len(history) = %d, want 1000", got)
	}
}
