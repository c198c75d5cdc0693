package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// languageSeeds покрывают каждое правило лексера и каждую ошибку.
var languageSeeds = []string{
	"",
	"[Country] == \"USA\"",
	"[Revenue]>=1000&&[Region]!=\"EU\"",
	"(a < 1 || b >= 2.5e-3) && c <> \"x\"",
	"1. 1e 1e+ 12.5E10 007",
	"\"tab\\tquote\\\"\\u00e9\\u1\"",
	"[col \\] name] [a\\\\b] [\\u0041]",
	"\"unterminated",
	"[unterminated",
	"\"line\nbreak\"",
	"\"bad \\q escape\"",
	"\"\\u\"",
	"a = 1",
	"a & b | !c",
	"@ # $ %",
	"\t \r\n\u00a0x",
	"\ufeff[a]==1",
	"Caf\u00e9 \u4e16\u754c",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.dcf файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".dcf" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
