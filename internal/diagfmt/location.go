package diagfmt

import (
	"dcfilter/internal/diag"
	"dcfilter/internal/source"
)

// hasLocation: у диагностик ввода-вывода и таймингов нет позиции в файле,
// их пустой Span нельзя резолвить (FileID 0 может принадлежать другому файлу).
func hasLocation(code diag.Code, span source.Span, fs *source.FileSet) bool {
	if fs == nil || int(span.File) >= fs.Len() {
		return false
	}
	return code.IsLexical() || span != (source.Span{})
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	case PathModeAuto:
		return f.FormatPath("auto", fs.BaseDir())
	default:
		return f.Path
	}
}

// lineStart возвращает смещение начала строки line (1-based).
func lineStart(f *source.File, line uint32) uint32 {
	if line <= 1 || len(f.LineIdx) == 0 {
		return 0
	}
	idx := int(line) - 2
	if idx >= len(f.LineIdx) {
		return f.Len()
	}
	return f.LineIdx[idx] + 1
}
