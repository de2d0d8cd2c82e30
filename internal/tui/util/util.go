// Package util provides shared helpers for TUI components.
package util

import (
	tea "charm.land/bubbletea/v2"
)

// Model is the interface page components implement.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) (Model, tea.Cmd)
	View() string
}

// CmdHandler wraps a message in a command.
func CmdHandler(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// InfoType classifies an InfoMsg.
type InfoType int

// Info message types.
const (
	InfoTypeInfo InfoType = iota
	InfoTypeSuccess
	InfoTypeWarn
	InfoTypeError
)

// InfoMsg carries a user-facing notification.
type InfoMsg struct {
	Msg  string
	Type InfoType
}

// ReportInfo returns a command that reports an informational message.
func ReportInfo(msg string) tea.Cmd {
	return CmdHandler(InfoMsg{Msg: msg, Type: InfoTypeInfo})
}

// ReportSuccess returns a command that reports a success message.
func ReportSuccess(msg string) tea.Cmd {
	return CmdHandler(InfoMsg{Msg: msg, Type: InfoTypeSuccess})
}

// ReportWarn returns a command that reports a warning.
func ReportWarn(msg string) tea.Cmd {
	return CmdHandler(InfoMsg{Msg: msg, Type: InfoTypeWarn})
}

// ReportError returns a command that reports an error.
func ReportError(err error) tea.Cmd {
	return CmdHandler(InfoMsg{Msg: err.Error(), Type: InfoTypeError})
}
