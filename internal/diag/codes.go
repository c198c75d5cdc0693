package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Лексические
	LexInfo               Code = 1000
	LexUnexpectedChar     Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedColumn Code = 1003
	LexInvalidEscape      Code = 1004

	// Ввод-вывод
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001

	// Конфигурация проекта (dcfilter.toml)
	ProjInfo          Code = 5000
	ProjInvalidConfig Code = 5001

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:           "Unknown error",
		LexInfo:               "Lexical information",
		LexUnexpectedChar:     "Unexpected character",
		LexUnterminatedString: "Unterminated string",
		LexUnterminatedColumn: "Unterminated column",
		LexInvalidEscape:      "Invalid escape sequence",
		IOInfo:                "I/O information",
		IOLoadFileError:       "Failed to load file",
		ProjInfo:              "Project information",
		ProjInvalidConfig:     "Invalid dcfilter.toml",
		ObsInfo:               "Observability information",
		ObsTimings:            "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// IsLexical reports whether the code belongs to the lexer range.
func (c Code) IsLexical() bool {
	return c >= LexInfo && c < 2000
}
