package tui

// KeyMap holds the global key bindings.
type KeyMap struct {
	Quit        []string
	PageChat    []string
	PageFiles   []string
	PageAccount []string
}

// DefaultKeyMap returns the default global key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        []string{"ctrl+c"},
		PageChat:    []string{"f1"},
		PageFiles:   []string{"f2"},
		PageAccount: []string{"f3"},
	}
}

func matches(key string, bindings []string) bool {
	for _, b := range bindings {
		if key == b {
			return true
		}
	}
	return false
}
