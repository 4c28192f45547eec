package report

import (
	"fmt"
	"os"
	"sync"
)

// Reporter is responsible for recording and displaying errors, warnings, and
// other kinds of messages produced during compilation.  It is the single
// diagnostic sink shared by all compilation phases: passes append to it and
// never read individual diagnostics back.  Once all phases have run, the
// driver asks it whether any error was recorded and aborts compilation if so.
// The reporter respects the set log level and is synchronized: its methods can
// be safely called from multiple goroutines.
type Reporter struct {
	// The mutex used to synchronize different report method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The list of errors recorded so far.  Errors are displayed as they are
	// recorded but retained so that they can be inspected afterwards.
	errors []*CompileMessage

	// The list of warnings to be displayed at the end of compilation.
	warnings []*CompileMessage
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// NewReporter creates a new reporter with the given log level.
func NewReporter(logLevel int) *Reporter {
	return &Reporter{
		m:        &sync.Mutex{},
		logLevel: logLevel,
	}
}

// CompileMessage is a diagnostic produced from user source code.
type CompileMessage struct {
	// The context of the file the message was produced from.  This is nil for
	// module-level messages, which carry a module name instead.
	Context *CompilationContext

	// The name of the module the message was produced from, for messages not
	// tied to any one source file.
	ModName string

	// The span of the significant source text.  This may be nil in which case
	// no position information is displayed.
	Span *TextSpan

	// The message text.
	Message string

	// Whether the message is an error as opposed to a warning.
	IsError bool
}

// -----------------------------------------------------------------------------

// ReportCompileError reports a compilation error: ie. erroneous input code.
// The error is always recorded regardless of log level; it is only displayed
// if the log level permits.
func (r *Reporter) ReportCompileError(ctx *CompilationContext, span *TextSpan, message string, args ...interface{}) {
	r.m.Lock()
	defer r.m.Unlock()

	msg := &CompileMessage{
		Context: ctx,
		Span:    span,
		Message: fmt.Sprintf(message, args...),
		IsError: true,
	}

	r.errors = append(r.errors, msg)

	if r.logLevel > LogLevelSilent {
		displayCompileMessage("error", msg)
	}
}

// ReportCompileWarning reports a compilation warning.  Warnings are deferred:
// they are displayed all at once when Finish is called.
func (r *Reporter) ReportCompileWarning(ctx *CompilationContext, span *TextSpan, message string, args ...interface{}) {
	r.m.Lock()
	defer r.m.Unlock()

	r.warnings = append(r.warnings, &CompileMessage{
		Context: ctx,
		Span:    span,
		Message: fmt.Sprintf(message, args...),
		IsError: false,
	})
}

// ReportModuleError reports an error loading a module.
func (r *Reporter) ReportModuleError(modName string, message string, args ...interface{}) {
	r.m.Lock()
	defer r.m.Unlock()

	msg := &CompileMessage{
		ModName: modName,
		Message: fmt.Sprintf(message, args...),
		IsError: true,
	}

	r.errors = append(r.errors, msg)

	if r.logLevel > LogLevelSilent {
		displayCompileMessage("error", msg)
	}
}

// ReportModuleWarning reports a warning from loading a module.
func (r *Reporter) ReportModuleWarning(modName string, message string, args ...interface{}) {
	r.m.Lock()
	defer r.m.Unlock()

	r.warnings = append(r.warnings, &CompileMessage{
		ModName: modName,
		Message: fmt.Sprintf(message, args...),
		IsError: false,
	})
}

// ReportStdError reports a non-fatal, standard Go error associated with a
// source file: eg. a failure to read it.
func (r *Reporter) ReportStdError(ctx *CompilationContext, err error) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errors = append(r.errors, &CompileMessage{
		Context: ctx,
		Message: err.Error(),
		IsError: true,
	})

	if r.logLevel > LogLevelSilent {
		displayStdError(ctx.ReprPath, err)
	}
}

// ReportFatal reports a fatal error and exits the program.  These are expected
// errors that generally result from invalid configuration of some form:
// missing module file, unreadable package directory, etc.
func (r *Reporter) ReportFatal(message string, args ...interface{}) {
	if r.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(message, args...))
	}

	os.Exit(1)
}

// -----------------------------------------------------------------------------

// AnyErrors returns whether or not any errors were recorded.  This is the
// single terminal check the driver makes after the analysis phases have run to
// decide whether compilation should be aborted.
func (r *Reporter) AnyErrors() bool {
	r.m.Lock()
	defer r.m.Unlock()

	return len(r.errors) > 0
}

// ErrorCount returns the number of errors recorded so far.
func (r *Reporter) ErrorCount() int {
	r.m.Lock()
	defer r.m.Unlock()

	return len(r.errors)
}

// Errors returns the recorded errors in the order they were reported.
func (r *Reporter) Errors() []*CompileMessage {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errors
}

// -----------------------------------------------------------------------------

// Finish displays all deferred warnings and the concluding message for
// compilation.  It should be called exactly once, after all phases have run.
func (r *Reporter) Finish() {
	r.m.Lock()
	defer r.m.Unlock()

	if r.logLevel >= LogLevelWarn {
		for _, warning := range r.warnings {
			displayCompileMessage("warning", warning)
		}
	}

	if r.logLevel == LogLevelVerbose {
		displayFinished(len(r.errors), len(r.warnings))
	}
}
