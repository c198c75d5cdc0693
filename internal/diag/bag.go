package diag

import (
	"cmp"
	"math"
	"slices"

	"fortio.org/safecast"

	"dcfilter/internal/source"
)

// Bag копит диагностики одного прогона с верхним пределом.
type Bag struct {
	items []Diagnostic
	max   uint16
}

// NewBag создаёт Bag с лимитом max; значения вне [0, 65535] прижимаются к границам.
func NewBag(max int) *Bag {
	limit := uint16(math.MaxUint16)
	if v, err := safecast.Conv[uint16](max); err == nil {
		limit = v
	} else if max < 0 {
		limit = 0
	}
	return &Bag{
		items: make([]Diagnostic, 0, min(int(limit), 64)),
		max:   limit,
	}
}

// Add возвращает false, когда лимит исчерпан и d отброшена.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap: сколько диагностик Bag готов принять.
func (b *Bag) Cap() uint16 {
	return b.max
}

func (b *Bag) HasErrors() bool {
	return slices.ContainsFunc(b.items, func(d Diagnostic) bool { return d.Severity >= SevError })
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает внутренний срез; менять его нельзя.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge переносит все диагностики other, поднимая лимит при необходимости:
// тайминги не должны теряться из-за ошибок.
func (b *Bag) Merge(other *Bag) {
	total := len(b.items) + len(other.items)
	if total > int(b.max) {
		b.max = uint16(min(total, math.MaxUint16)) // #nosec G115 -- clamped above
	}
	b.items = append(b.items, other.items...)
}

// Sort упорядочивает по файлу и позиции, затем ERROR раньше INFO, затем по коду.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Start, y.Primary.Start),
			cmp.Compare(x.Primary.End, y.Primary.End),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

type dedupKey struct {
	code Code
	span source.Span
	msg  string
}

// Dedup убирает повторы с тем же кодом, местом и текстом, оставляя первое вхождение.
func (b *Bag) Dedup() {
	seen := make(map[dedupKey]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := dedupKey{d.Code, d.Primary, d.Message}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
