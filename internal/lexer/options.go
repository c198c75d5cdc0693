package lexer

import (
	"dcfilter/internal/diag"
)

type Options struct {
	// Reporter получает диагностику по каждой лексической ошибке. Может быть nil:
	// ошибка всё равно возвращается из Next.
	Reporter diag.Reporter
}
