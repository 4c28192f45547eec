package cmd

import (
	"fmt"
	"os"
	"strings"

	"sable/common"
	"sable/report"
)

const usage = `Usage: sablec [flags|options] <path to module root directory>

Flags:
------
-h, --help      Displays usage information (ie. this text).
-v, --version   Displays the current compiler version.

Options:
--------
-ll, --loglevel   Sets the compiler's log-level.  Valid values are:
                    - "verbose" for outputting all messages (default)
                    - "warn" for outputting errors and warnings
                    - "error" for outputting errors only
                    - "silent" for no output
`

// Prints the usage message and exits the compiler with the given exit code.
func printUsage(exitCode int) {
	fmt.Print(usage, "\n")
	os.Exit(exitCode)
}

// argParser is a command-line argument parser.
type argParser struct {
	// The arguments being parsed.
	args []string

	// The argument parser's position within those arguments.
	ndx int
}

// Set containing all the argument names that correspond to options.
var options = map[string]struct{}{
	"ll":        {},
	"-loglevel": {},
}

// argumentError displays an argument error and exits the program.
func argumentError(message string, args ...interface{}) {
	fmt.Print("argument error: ", fmt.Sprintf(message, args...), "\n\n")
	printUsage(1)
}

// nextArg parses the next command-line argument if one exists.  The first value
// is the name of the argument.  If this argument is positional, this value is
// empty.  The second value is the value of the argument.  If this value is
// empty, the argument is a flag.  If an argument exists, at least one of the
// returned values will be non-empty.  The final value indicates whether or not
// there was an argument to parse.
func (ap *argParser) nextArg() (string, string, bool) {
	if ap.ndx < len(ap.args) {
		arg := ap.args[ap.ndx]
		ap.ndx++

		if strings.HasPrefix(arg, "-") { // flag or option
			name := arg[1:]

			if _, ok := options[name]; ok { // option
				// Make sure the option value exists.
				if ap.ndx < len(ap.args) && !strings.HasPrefix(ap.args[ap.ndx], "-") {
					value := ap.args[ap.ndx]
					ap.ndx++
					return name, value, true
				} else {
					argumentError("option %s requires an argument", strings.TrimLeft(name, "-"))
				}
			} else { // flag
				return name, "", true
			}

		} else { // positional
			return "", arg, true
		}
	}

	// No arguments to parse.
	return "", "", false
}

// parseArgs parses the command line arguments and returns the root path and
// log level to compile with.  If the arguments are invalid or compilation
// should not continue (eg. the user asked for the version), the program exits.
func parseArgs(args []string) (string, int) {
	rootPath := ""
	logLevel := report.LogLevelVerbose

	ap := argParser{args: args, ndx: 0}

	for {
		name, value, ok := ap.nextArg()
		if !ok {
			break
		}

		switch name {
		case "h", "-help":
			printUsage(0)
		case "v", "-version":
			fmt.Println("sablec v" + common.SableVersion)
			os.Exit(0)
		case "ll", "-loglevel":
			switch value {
			case "silent":
				logLevel = report.LogLevelSilent
			case "error":
				logLevel = report.LogLevelError
			case "warn":
				logLevel = report.LogLevelWarn
			case "verbose":
				logLevel = report.LogLevelVerbose
			default:
				argumentError("invalid log level")
			}
		case "":
			if rootPath == "" {
				rootPath = value
			} else {
				argumentError("root path specified multiple times")
			}
		default:
			argumentError("unknown flag: %s", name)
		}
	}

	// Check to make sure a root path was specified.
	if rootPath == "" {
		argumentError("a root path must be specified")
	}

	return rootPath, logLevel
}
