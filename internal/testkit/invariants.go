package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"dcfilter/internal/source"
	"dcfilter/internal/token"
)

// CheckTokenInvariants проверяет полный поток токенов файла:
// 1) спаны непустые (кроме EOF), принадлежат файлу и не выходят за границы
// 2) спаны идут встык, начиная с 0, и Text совпадает с содержимым файла
// 3) ровно один EOF, последний, пустой, на конце ввода
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	body := tokens[:len(tokens)-1]
	end, err := CheckPrefixInvariants(body, sf)
	if err != nil {
		return err
	}

	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF {
		return fmt.Errorf("last token is %s, want EOF", last.Kind)
	}
	if last.Span.File != sf.ID {
		return fmt.Errorf("EOF span file mismatch: got=%d want=%d", last.Span.File, sf.ID)
	}
	if !last.Span.Empty() || last.Span.Start != end {
		return fmt.Errorf("EOF span %v, want empty at %d", last.Span, end)
	}
	if last.Text != "" {
		return fmt.Errorf("EOF carries text %q", last.Text)
	}
	if end != sf.Len() {
		return fmt.Errorf("tokens cover %d bytes of %d", end, sf.Len())
	}
	return nil
}

// CheckPrefixInvariants проверяет поток без EOF, например токены до ошибки.
// Возвращает смещение, на котором поток заканчивается.
func CheckPrefixInvariants(tokens []token.Token, sf *source.File) (uint32, error) {
	if sf == nil {
		return 0, fmt.Errorf("nil file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return 0, fmt.Errorf("len content overflow: %w", err)
	}

	var next uint32
	for i, tok := range tokens {
		sp := tok.Span
		if tok.Kind == token.EOF {
			return 0, fmt.Errorf("token %d: EOF before end of stream", i)
		}
		if sp.File != sf.ID {
			return 0, fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End <= sp.Start {
			return 0, fmt.Errorf("token %d (%s): empty span %v", i, tok.Kind, sp)
		}
		if sp.End > size {
			return 0, fmt.Errorf("token %d (%s): span end beyond content: %d > %d", i, tok.Kind, sp.End, size)
		}
		if sp.Start != next {
			return 0, fmt.Errorf("token %d (%s): starts at %d, previous token ended at %d", i, tok.Kind, sp.Start, next)
		}
		if want := string(sf.Content[sp.Start:sp.End]); tok.Text != want {
			return 0, fmt.Errorf("token %d (%s): text %q does not match source %q", i, tok.Kind, tok.Text, want)
		}
		next = sp.End
	}
	return next, nil
}

// Concat склеивает тексты токенов.
func Concat(tokens []token.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}
