package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode реализует pflag.Value для --ui
type uiMode uint8

const (
	uiModeAuto uiMode = iota
	uiModeOn
	uiModeOff
)

var uiModeNames = [...]string{
	uiModeAuto: "auto",
	uiModeOn:   "on",
	uiModeOff:  "off",
}

func (m uiMode) String() string {
	if int(m) < len(uiModeNames) {
		return uiModeNames[m]
	}
	return "auto"
}

// Set принимает auto|on|off, а также true/false.
func (m *uiMode) Set(value string) error {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case "", "auto":
		*m = uiModeAuto
	case "on", "true":
		*m = uiModeOn
	case "off", "false":
		*m = uiModeOff
	default:
		return fmt.Errorf("expected auto|on|off, got %q", value)
	}
	return nil
}

func (m *uiMode) Type() string { return "mode" }

// wantsTUI: в auto-режиме прогресс рисуем только в терминал.
func (m uiMode) wantsTUI(out *os.File) bool {
	switch m {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return isTerminal(out)
}
