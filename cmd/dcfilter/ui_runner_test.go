package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dcfilter/internal/driver"
	"dcfilter/internal/pipeline"
)

// UI закрыт до первого события: TokenizeDir всё равно должен доработать.
func TestDriveWithProgressUIClosedEarly(t *testing.T) {
	dir := t.TempDir()
	const files = 120 // по 3 события на файл, больше буфера канала
	for i := range files {
		path := filepath.Join(dir, fmt.Sprintf("f%03d.dcf", i))
		if err := os.WriteFile(path, []byte(`[a] = 1`), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	done := make(chan checkOutcome, 1)
	go func() {
		done <- driveWithProgress(
			func(sink pipeline.ProgressSink) checkOutcome {
				fs, results, err := driver.TokenizeDir(context.Background(), dir, driver.Options{Jobs: 2}, sink)
				return checkOutcome{fileSet: fs, results: results, err: err}
			},
			func(<-chan pipeline.Event) error { return nil },
		)
	}()

	select {
	case outcome := <-done:
		if outcome.err != nil {
			t.Fatalf("unexpected error: %v", outcome.err)
		}
		if len(outcome.results) != files {
			t.Errorf("expected %d results, got %d", files, len(outcome.results))
		}
	case <-time.After(10 * time.Second):
		t.Fatal("driveWithProgress did not return after the UI closed")
	}
}

func TestDriveWithProgressReportsUIError(t *testing.T) {
	uiErr := errors.New("terminal gone")
	outcome := driveWithProgress(
		func(sink pipeline.ProgressSink) checkOutcome {
			sink.OnEvent(pipeline.Event{File: "a.dcf"})
			return checkOutcome{}
		},
		func(events <-chan pipeline.Event) error {
			<-events
			return uiErr
		},
	)
	if !errors.Is(outcome.err, uiErr) {
		t.Errorf("expected UI error, got %v", outcome.err)
	}
}
