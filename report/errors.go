package report

import "fmt"

// LocalCompileError is a compilation error that occurs in a context in which
// the file is known by the error handler and thus doesn't need to be passed
// along with the error.  It is used with panic/recover to abort processing of
// a single compilation unit (eg. one source file) without unwinding the whole
// compiler.
type LocalCompileError struct {
	// The error message.
	Message string

	// The span over which the error occurs.
	Span *TextSpan
}

func (lce *LocalCompileError) Error() string {
	return lce.Message
}

// Raise creates a new local compile error.
func Raise(span *TextSpan, msg string, args ...interface{}) *LocalCompileError {
	return &LocalCompileError{Message: fmt.Sprintf(msg, args...), Span: span}
}

// -----------------------------------------------------------------------------

// CatchErrors catches any errors thrown by a `panic` during a stage of
// compilation and records them on the reporter.  In effect, this handler
// determines when any errors "unrecoverable" within a given subsection of the
// compiler should stop bubbling.
// NB: This function must ALWAYS be deferred.
func (r *Reporter) CatchErrors(ctx *CompilationContext) {
	if x := recover(); x != nil {
		if cerr, ok := x.(*LocalCompileError); ok {
			r.ReportCompileError(ctx, cerr.Span, cerr.Message)
		} else if serr, ok := x.(error); ok {
			r.ReportStdError(ctx, serr)
		} else {
			r.ReportFatal("%s", x)
		}
	}
}
