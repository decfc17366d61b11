package resolver

import "fmt"

// Code identifies the one kind of error the resolver ever surfaces to a
// caller. Everything else (a missing manifest, a failed stat) is
// recoverable and is swallowed at the point of failure; see spec §7.
type Code uint8

const (
	ModuleNotFound Code = iota
)

// NotFoundError is raised when every candidate the resolver tried for a
// request came up empty. It names the original input and the directory the
// request was issued from, matching the "module not found" message shape
// bundlers report to users.
type NotFoundError struct {
	Code  Code
	Input string
	Dir   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Could not resolve %q from %q", e.Input, e.Dir)
}

func newNotFound(input, dir string) error {
	return &NotFoundError{Code: ModuleNotFound, Input: input, Dir: dir}
}
