package check

import (
	"fmt"

	"github.com/you-not-fish/typegraph/internal/syntax"
)

// A TypeError is an error found while checking declarations, such as an
// undefined name or a cyclic class hierarchy.
type TypeError struct {
	Pos syntax.Pos
	Msg string
}

func (e *TypeError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// An ErrorHandler receives every error found, in source order within a
// file. Check keeps going after reporting, so one run lists them all.
type ErrorHandler func(pos syntax.Pos, msg string)

// errorf records an error. The first one becomes the result of Check.
func (c *Checker) errorf(pos syntax.Pos, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if c.first == nil {
		c.first = &TypeError{Pos: pos, Msg: msg}
	}
	c.errors++
	if h := c.conf.Error; h != nil {
		h(pos, msg)
	}
}
