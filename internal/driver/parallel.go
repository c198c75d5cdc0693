package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"dcfilter/internal/diag"
	"dcfilter/internal/pipeline"
	"dcfilter/internal/source"
	"dcfilter/internal/token"
	"dcfilter/internal/trace"
)

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path    string        // Путь к файлу относительно каталога
	FileID  source.FileID // ID файла в FileSet (0 при ошибке загрузки)
	Loaded  bool
	Tokens  []token.Token
	Bag     *diag.Bag
	Err     error // ошибка загрузки или первая лексическая ошибка
	Timings pipeline.Timings
}

// ListFiles возвращает отсортированный список файлов с расширением ext в каталоге
func ListFiles(dir, ext string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все файлы фильтров в каталоге параллельно.
// Порядок результатов совпадает с отсортированным списком файлов. Ошибки
// загрузки и лексические ошибки попадают в результаты; возвращаемая ошибка
// означает сбой обхода каталога или отмену контекста.
func TokenizeDir(ctx context.Context, dir string, opts Options, sink pipeline.ProgressSink) (*source.FileSet, []TokenizeDirResult, error) {
	tracer := trace.FromContext(ctx)
	dirSpan := trace.Begin(tracer, trace.ScopePass, "lex-dir", trace.CurrentSpan(ctx))
	defer dirSpan.End("")

	files, err := ListFiles(dir, opts.ext())
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	results := make([]TokenizeDirResult, len(files))
	for i, path := range files {
		results[i].Path = relativeTo(path, dir)
		pipeline.Emit(sink, pipeline.Event{File: results[i].Path, Stage: pipeline.StageLoad, Status: pipeline.StatusQueued})
	}

	// FileSet не потокобезопасен, поэтому файлы загружаются заранее, последовательно
	loadIdx := opts.Timer.Begin("load")
	for i, path := range files {
		started := time.Now()
		fileID, loadErr := fileSet.Load(path, source.LoadOptions{NormalizeNFC: opts.NormalizeNFC})
		results[i].Timings.Set(pipeline.StageLoad, time.Since(started))
		if loadErr != nil {
			results[i].Err = loadErr
			continue
		}
		results[i].FileID = fileID
		results[i].Loaded = true
	}
	opts.Timer.End(loadIdx, pluralFiles(len(files)))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(trace.WithSpan(ctx, dirSpan))
	g.SetLimit(min(jobs, len(files)))

	lexIdx := opts.Timer.Begin("lex")
	for i := range files {
		g.Go(func() error {
			// Проверка отмены
			if err := gctx.Err(); err != nil {
				return err
			}

			// индекс i уникален для каждой горутины, мьютекс не нужен
			res := &results[i]
			started := time.Now()
			pipeline.Emit(sink, pipeline.Event{File: res.Path, Stage: pipeline.StageLex, Status: pipeline.StatusWorking})

			if !res.Loaded {
				res.Bag = diag.NewBag(opts.MaxDiagnostics)
				res.Bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+res.Err.Error()))
				pipeline.Emit(sink, pipeline.Event{File: res.Path, Stage: pipeline.StageLoad, Status: pipeline.StatusError, Err: res.Err})
				return nil
			}

			fileOpts := opts
			fileOpts.Timer = nil
			tr := tokenizeFile(gctx, fileSet, fileSet.Get(res.FileID), fileOpts)
			res.Tokens, res.Bag, res.Err = tr.Tokens, tr.Bag, tr.Err

			elapsed := time.Since(started)
			res.Timings.Set(pipeline.StageLex, elapsed)
			status := pipeline.StatusDone
			if res.Err != nil {
				status = pipeline.StatusError
			}
			pipeline.Emit(sink, pipeline.Event{
				File:    res.Path,
				Stage:   pipeline.StageLex,
				Status:  status,
				Err:     res.Err,
				Tokens:  len(res.Tokens),
				Elapsed: elapsed,
			})
			return nil
		})
	}

	// Ждём завершения всех горутин
	err = g.Wait()
	opts.Timer.End(lexIdx, pluralFiles(len(files)))
	return fileSet, results, err
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return strconv.Itoa(n) + " files"
}

func relativeTo(path, dir string) string {
	if rel, err := source.RelativePath(path, dir); err == nil {
		return rel
	}
	return path
}
