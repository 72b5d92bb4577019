// Package errors provides a unified interface for error handling,
// combining stdlib errors with pkg/errors for stack trace support.
package errors

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const maxStackDepth = 32

// facadeFrames names the constructors of this package; pkg/errors records their frame first.
var facadeFrames = func() map[string]bool {
	name := runtime.FuncForPC(reflect.ValueOf(Callers).Pointer()).Name()
	pkg := strings.TrimSuffix(name, ".Callers")

	frames := make(map[string]bool)
	for _, fn := range []string{"Wrap", "Wrapf", "WithStack", "Errorf"} {
		frames[pkg+"."+fn] = true
	}

	return frames
}()

// New returns an error that formats as the given text.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Wrap returns an error annotating err with a stack trace and the supplied message.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf returns an error annotating err with a stack trace and the format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace at the point WithStack was called.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error with stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Callers renders the current goroutine's call stack in the pkg/errors "%+v" format.
// skip=0 starts at the function calling Callers; each increment drops one more frame.
func Callers(skip int) string {
	var pcs [maxStackDepth]uintptr
	// +2 drops runtime.Callers and Callers itself.
	n := runtime.Callers(skip+2, pcs[:])

	stack := make(pkgerrors.StackTrace, n)
	for i := 0; i < n; i++ {
		stack[i] = pkgerrors.Frame(pcs[i])
	}

	return strings.TrimPrefix(fmt.Sprintf("%+v", stack), "\n")
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackOf returns the innermost stack trace recorded by pkg/errors inside err's chain,
// or "" when none of the wrapped errors carries one. The trace starts at the code
// that called Wrap, Errorf and friends, not inside this package.
func StackOf(err error) string {
	var stack pkgerrors.StackTrace
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			stack = st.StackTrace()
		}
	}

	for len(stack) > 0 && facadeFrames[frameName(stack[0])] {
		stack = stack[1:]
	}

	if len(stack) == 0 {
		return ""
	}

	return strings.TrimPrefix(fmt.Sprintf("%+v", stack), "\n")
}

func frameName(f pkgerrors.Frame) string {
	fn := runtime.FuncForPC(uintptr(f) - 1)
	if fn == nil {
		return ""
	}

	return fn.Name()
}
