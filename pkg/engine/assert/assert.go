// Package assert reports contract violations: programming errors that must
// halt processing rather than be recovered from.
package assert

import (
	"fmt"
	"log"
)

// Violation is the panic value raised by That.
type Violation struct {
	Message string
}

func (v *Violation) Error() string {
	return "assertion failed: " + v.Message
}

// That panics with a *Violation when cond is false.
func That(cond bool, format string, args ...any) {
	if cond {
		return
	}
	v := &Violation{Message: fmt.Sprintf(format, args...)}
	log.Print(v.Error())
	panic(v)
}

// Fail unconditionally raises a violation.
func Fail(format string, args ...any) {
	That(false, format, args...)
}
