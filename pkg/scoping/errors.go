package scoping

import "fmt"

// ParseError reports a tile fixup field that doesn't parse the way this
// module requires — currently only a non-numeric mapgen_choice weight.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scoping: %s", e.Reason)
}
