package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"dcfilter/internal/driver"
	"dcfilter/internal/pipeline"
	"dcfilter/internal/source"
	"dcfilter/internal/ui"
)

type checkOutcome struct {
	fileSet *source.FileSet
	results []driver.TokenizeDirResult
	err     error
}

// runCheckWithUI запускает TokenizeDir в фоне и показывает прогресс в Bubble Tea.
func runCheckWithUI(ctx context.Context, dir string, opts driver.Options) (*source.FileSet, []driver.TokenizeDirResult, error) {
	ext := opts.Ext
	if ext == "" {
		ext = driver.DefaultExt
	}
	files, err := driver.ListFiles(dir, ext)
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, len(files))
	for i, path := range files {
		names[i] = path
		if rel, relErr := source.RelativePath(path, dir); relErr == nil {
			names[i] = rel
		}
	}

	outcome := driveWithProgress(
		func(sink pipeline.ProgressSink) checkOutcome {
			fs, results, runErr := driver.TokenizeDir(ctx, dir, opts, sink)
			return checkOutcome{fileSet: fs, results: results, err: runErr}
		},
		func(events <-chan pipeline.Event) error {
			model := ui.NewProgressModel("check "+dir, names, events)
			program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
			_, uiErr := program.Run()
			return uiErr
		},
	)
	return outcome.fileSet, outcome.results, outcome.err
}

// driveWithProgress запускает work в фоне, а show читает его события.
// show может вернуться раньше (Ctrl-C закрывает UI без ошибки), поэтому
// оставшиеся события всегда дочитываются, иначе work встанет на полном канале.
func driveWithProgress(work func(pipeline.ProgressSink) checkOutcome, show func(<-chan pipeline.Event) error) checkOutcome {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		outcome := work(pipeline.ChannelSink{Ch: events})
		close(events)
		outcomeCh <- outcome
	}()

	uiErr := show(events)
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		outcome.err = uiErr
	}
	return outcome
}
