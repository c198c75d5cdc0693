package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (flag value, stdin, test).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска
	// FileHadBOM marks content whose UTF-8 BOM was stripped on load.
	FileHadBOM
	// FileNormalizedNFC marks content rewritten to Unicode NFC on load.
	FileNormalizedNFC
)

// File captures metadata and content for a single filter expression source.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}

// LoadOptions tunes how Load prepares file content.
type LoadOptions struct {
	// NormalizeNFC rewrites the content to Unicode NFC before it is stored.
	NormalizeNFC bool
}
