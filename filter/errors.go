package filter

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr/file"
)

// CompilationError reports an expression that expr rejected. Line and Column
// are 1-based and zero when the failure has no source location.
type CompilationError struct {
	Expression string
	Reason     string
	Line       int
	Column     int
	Err        error
}

func newCompilationError(expression string, err error) *CompilationError {
	ce := &CompilationError{Expression: expression, Reason: err.Error(), Err: err}

	var fe *file.Error
	if errors.As(err, &fe) {
		ce.Reason = fe.Message
		ce.Line = fe.Line
		ce.Column = fe.Column + 1
	}
	return ce
}

func (e *CompilationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("filter %q: %s (line %d, column %d)", e.Expression, e.Reason, e.Line, e.Column)
	}
	return fmt.Sprintf("filter %q: %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error { return e.Err }

// EvaluationError reports a filter that failed on a specific feed or entry,
// identified by its title.
type EvaluationError struct {
	Expression string
	Title      string
	Reason     string
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("filter %q on %q: %s", e.Expression, e.Title, e.Reason)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
