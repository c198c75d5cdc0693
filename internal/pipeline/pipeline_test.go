package pipeline

import (
	"testing"
	"time"
)

func TestTimings(t *testing.T) {
	var tm Timings
	if tm.Has(StageLex) || tm.Duration(StageLex) != 0 {
		t.Fatal("zero Timings must be empty")
	}
	tm.Set(StageLoad, 2*time.Millisecond)
	tm.Set(StageLex, 3*time.Millisecond)
	if !tm.Has(StageLoad) {
		t.Error("StageLoad should be recorded")
	}
	if got := tm.Sum(StageLoad, StageLex); got != 5*time.Millisecond {
		t.Errorf("Sum = %v, want 5ms", got)
	}
}

func TestSinks(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "a.dcf", Status: StatusDone})
	if ev := <-ch; ev.File != "a.dcf" {
		t.Errorf("unexpected event %+v", ev)
	}
	ChannelSink{}.OnEvent(Event{}) // nil channel is ignored

	var rec Recorder
	Emit(&rec, Event{Status: StatusQueued})
	Emit(nil, Event{Status: StatusError})
	var calls int
	Emit(SinkFunc(func(Event) { calls++ }), Event{})
	if len(rec.Events()) != 1 || calls != 1 {
		t.Errorf("recorder got %d events, func got %d calls", len(rec.Events()), calls)
	}
}
