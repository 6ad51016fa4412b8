package graphio

import "fmt"

// FormatError is the "source-format error" of the error taxonomy: an
// unparseable network file, carrying the offending line number.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("graphio: %s:%d: %s", e.Path, e.Line, e.Msg)
}
