// Package page defines page identifiers and navigation messages.
package page

// ID identifies a top-level page.
type ID string

// Page identifiers.
const (
	Login   ID = "login"
	Chat    ID = "chat"
	Files   ID = "files"
	Account ID = "account"
)

// ChangeMsg requests a page transition.
type ChangeMsg struct {
	Page ID
}
