// Package fuzztests houses Go fuzz harnesses for the filter tokenizer
// (source -> lexer -> driver). They guard against panics, lost bytes and
// non-deterministic output on arbitrary inputs.
//
// Назначение: прогонять произвольные байты через лексер, декодер литералов и
// устойчивый режим драйвера, проверяя инварианты потока токенов через testkit.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/lexer, internal/driver, internal/diag,
// internal/testkit.
package fuzztests
