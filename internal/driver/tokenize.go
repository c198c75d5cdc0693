package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"dcfilter/internal/diag"
	"dcfilter/internal/lexer"
	"dcfilter/internal/source"
	"dcfilter/internal/token"
	"dcfilter/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	// Err: первая лексическая ошибка (*lexer.Error) или nil.
	// В обычном режиме Tokens заканчиваются на токене перед ошибкой, без EOF.
	Err error
}

// Tokenize loads path from disk and tokenizes it. The returned error is only
// for I/O and cancellation; lexical errors land in the result.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fs := source.NewFileSet()
	loadIdx := opts.Timer.Begin("load")
	fileID, err := fs.Load(path, source.LoadOptions{NormalizeNFC: opts.NormalizeNFC})
	opts.Timer.End(loadIdx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	res := tokenizeFile(ctx, fs, fs.Get(fileID), opts)
	appendFileTimings(res.Bag, opts.Timer, path)
	return res, nil
}

// TokenizeSource tokenizes an in-memory expression (a --expr value or stdin).
func TokenizeSource(ctx context.Context, name string, src []byte, opts Options) (*TokenizeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fs := source.NewFileSet()
	fileID := fs.AddPrepared(name, src, source.FileVirtual, source.LoadOptions{NormalizeNFC: opts.NormalizeNFC})
	res := tokenizeFile(ctx, fs, fs.Get(fileID), opts)
	appendFileTimings(res.Bag, opts.Timer, name)
	return res, nil
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file:"+file.Path, trace.CurrentSpan(ctx))
	lexIdx := opts.Timer.Begin("lex")

	bag := diag.NewBag(opts.MaxDiagnostics)
	lexOpts := lexer.Options{Reporter: diag.BagReporter{Bag: bag}}

	var (
		tokens []token.Token
		err    error
	)
	if opts.Resilient {
		tokens, err = tokenizeResilient(file, lexOpts)
	} else {
		tokens, err = lexer.Tokenize(file, lexOpts)
	}

	if tracer.Level() >= trace.LevelDebug {
		for _, tok := range tokens {
			trace.Point(tracer, trace.ScopeToken, tok.Kind.String(), strconv.Quote(tok.Text), span.ID())
		}
	}
	if err != nil {
		trace.Error(tracer, trace.ScopeFile, "lex", err.Error(), span.ID())
	}

	opts.Timer.End(lexIdx, file.Path)
	span.WithExtra("tokens", strconv.Itoa(len(tokens))).End(statusDetail(err))

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
		Err:     err,
	}
}

// tokenizeResilient продолжает после ошибок: проблемный фрагмент (Error.Span)
// становится токеном Invalid, и сканирование начинается заново сразу после него.
// Склейка текстов всех токенов по-прежнему даёт исходный ввод.
func tokenizeResilient(file *source.File, opts lexer.Options) ([]token.Token, error) {
	var (
		tokens []token.Token
		first  error
		off    uint32
	)
	for {
		lx := lexer.NewAt(file, off, opts)
		restarted := false
		for tok, err := range lx.All() {
			if err != nil {
				var lexErr *lexer.Error
				if !errors.As(err, &lexErr) {
					return tokens, err
				}
				if first == nil {
					first = err
				}
				tokens = append(tokens, token.Token{
					Kind: token.Invalid,
					Span: lexErr.Span,
					Text: file.Slice(lexErr.Span),
				})
				off = lexErr.Span.End
				restarted = true
				break
			}
			tokens = append(tokens, tok)
		}
		if !restarted {
			return tokens, first
		}
	}
}

func statusDetail(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
