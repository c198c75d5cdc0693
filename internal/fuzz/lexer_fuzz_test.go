package fuzztests

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"dcfilter/internal/diag"
	"dcfilter/internal/driver"
	"dcfilter/internal/lexer"
	"dcfilter/internal/source"
	"dcfilter/internal/testkit"
	"dcfilter/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func fuzzFile(input []byte) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("fuzz.dcf", input))
}

// FuzzLexerTokens: поток до ошибки (или до EOF) идёт встык и совпадает с вводом,
// ошибка начинается ровно там, где кончился последний токен.
func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := fuzzFile(clampInput(input))

		bag := diag.NewBag(64)
		tokens, err := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if err == nil {
			if chkErr := testkit.CheckTokenInvariants(tokens, file); chkErr != nil {
				t.Fatalf("%v\ninput: %q", chkErr, file.Content)
			}
			if bag.Len() != 0 {
				t.Fatalf("clean stream reported %d diagnostics", bag.Len())
			}
			return
		}

		var lexErr *lexer.Error
		if !errors.As(err, &lexErr) {
			t.Fatalf("unexpected error type %T: %v", err, err)
		}
		end, chkErr := testkit.CheckPrefixInvariants(tokens, file)
		if chkErr != nil {
			t.Fatalf("%v\ninput: %q", chkErr, file.Content)
		}
		if lexErr.Span.Start != end || lexErr.Offset < end || lexErr.Span.End > file.Len() {
			t.Fatalf("error %v (span %v) does not follow prefix ending at %d", err, lexErr.Span, end)
		}
		if bag.Len() != 1 {
			t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
		}
	})
}

func FuzzLexerDeterministic(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		file := fuzzFile(clampInput(input))
		a, errA := lexer.Tokenize(file, lexer.Options{})
		b, errB := lexer.Tokenize(file, lexer.Options{})
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("token streams differ for %q", file.Content)
		}
		if (errA == nil) != (errB == nil) || (errA != nil && errA.Error() != errB.Error()) {
			t.Fatalf("errors differ: %v vs %v", errA, errB)
		}
	})
}

// FuzzResilientCoversInput: в устойчивом режиме поток всегда покрывает весь ввод.
func FuzzResilientCoversInput(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		res, err := driver.TokenizeSource(context.Background(), "fuzz.dcf", clampInput(input), driver.Options{
			Resilient:      true,
			MaxDiagnostics: 1 << 16,
		})
		if err != nil {
			t.Fatal(err)
		}
		if chkErr := testkit.CheckTokenInvariants(res.Tokens, res.File); chkErr != nil {
			t.Fatalf("%v\ninput: %q", chkErr, res.File.Content)
		}
		invalid := 0
		for _, tok := range res.Tokens {
			if tok.Kind == token.Invalid {
				invalid++
			}
		}
		if (invalid == 0) != (res.Err == nil) {
			t.Fatalf("invalid tokens=%d but err=%v", invalid, res.Err)
		}
	})
}

// FuzzDecodeNoPanic: декодер либо возвращает значение, либо *lexer.Error.
func FuzzDecodeNoPanic(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		for tok, err := range lexer.New(fuzzFile(clampInput(input)), lexer.Options{}).All() {
			if err != nil {
				return
			}
			if tok.Kind != token.String && tok.Kind != token.Column {
				continue
			}
			if _, decErr := lexer.Decode(tok); decErr != nil {
				t.Fatalf("scanned literal %q failed to decode: %v", tok.Text, decErr)
			}
		}
		if _, err := lexer.DecodeString(string(input)); err != nil {
			var lexErr *lexer.Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("unexpected error type %T", err)
			}
		}
	})
}
