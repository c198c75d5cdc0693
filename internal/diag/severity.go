package diag

import "strings"

// Severity: уровень диагностики. Лексер выдаёт только ошибки, драйвер ещё INFO с таймингами.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// Label: имя уровня в нижнем регистре для короткого формата.
func (s Severity) Label() string {
	return strings.ToLower(s.String())
}
