package engine

import "fmt"

// ParseError indicates user input that names no known value of Kind.
// This is returned by the Parse* helpers and should be shown to the user.
type ParseError struct {
	Kind  string
	Input string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Input)
}
