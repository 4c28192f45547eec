package report

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// The pterm styles used to display the different kinds of messages.
var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// displayCompileMessage displays a compilation error or warning.  The label is
// the string to prefix the message with: eg. if we want to display an error,
// the label is "error".
func displayCompileMessage(label string, msg *CompileMessage) {
	var labelStyle *pterm.Style
	if msg.IsError {
		labelStyle = ErrorStyleBG
	} else {
		labelStyle = WarnStyleBG
	}

	if msg.Context == nil {
		fmt.Printf("module %s: ", msg.ModName)
		labelStyle.Print(label)
		fmt.Printf(": %s\n\n", msg.Message)
	} else if msg.Span == nil {
		fmt.Printf("%s: ", msg.Context.ReprPath)
		labelStyle.Print(label)
		fmt.Printf(": %s\n\n", msg.Message)
	} else {
		fmt.Printf("%s:%d:%d: ", msg.Context.ReprPath, msg.Span.StartLine+1, msg.Span.StartCol+1)
		labelStyle.Print(label)
		fmt.Printf(": %s\n\n", msg.Message)
		displaySourceText(msg.Context.AbsPath, msg.Span)
	}
}

// displayStdError displays a standard Go error.
func displayStdError(reprPath string, err error) {
	fmt.Printf("%s: ", reprPath)
	ErrorStyleBG.Print("error")
	fmt.Printf(": %s\n\n", err)
}

// displayFatal displays a fatal error message.
func displayFatal(message string) {
	ErrorStyleBG.Print("fatal error")
	fmt.Printf(": %s\n\n", message)
}

// displayFinished displays the concluding message for compilation.
func displayFinished(errorCount, warningCount int) {
	if errorCount == 0 {
		SuccessStyleBG.Print("analysis finished")
		fmt.Printf(" %d errors, %d warnings\n", errorCount, warningCount)
	} else {
		ErrorStyleBG.Print("analysis failed")
		fmt.Printf(" %d errors, %d warnings\n", errorCount, warningCount)
	}
}

// -----------------------------------------------------------------------------

// displaySourceText displays a segment of source text defined by a text span.
func displaySourceText(absPath string, span *TextSpan) {
	// Open the file so we can read the desired source text.
	file, err := os.Open(absPath)
	if err != nil {
		// The file was readable when it was parsed; if it has vanished since,
		// the positional excerpt is simply skipped.
		return
	}
	defer file.Close()

	// Collect all the source lines containing the given source text.
	var lines []string
	sc := bufio.NewScanner(file)
	for ln := 0; sc.Scan(); ln++ {
		if span.StartLine <= ln && ln <= span.EndLine {
			lines = append(lines, strings.ReplaceAll(sc.Text(), "\t", "    "))
		}
	}

	if err := sc.Err(); err != nil || len(lines) == 0 {
		return
	}

	// Calculate the minimum line indentation.
	minIndent := math.MaxInt
	for _, line := range lines {
		lineIndent := 0
		for _, c := range line {
			if c == ' ' {
				lineIndent++
			} else {
				break
			}
		}

		if lineIndent < minIndent {
			minIndent = lineIndent
		}
	}

	// Calculate the maximum line number length.
	maxLineNumLen := len(strconv.Itoa(span.EndLine + 1))

	// Generate the format string for line numbers.
	lineNumFmtStr := "%-" + strconv.Itoa(maxLineNumLen) + "v | "

	for i, line := range lines {
		// Print the line number and separator bar.
		fmt.Printf(lineNumFmtStr, i+span.StartLine+1)

		// Print the source text with the leading indent trimmed off.
		fmt.Println(line[minIndent:])

		// Print the line and bar used for the line for carret underlining.
		fmt.Print(strings.Repeat(" ", maxLineNumLen), " | ")

		// The number of spaces before carret underlining begins.  For any line
		// which is not the starting line, this is always zero since the
		// underlining is always continuing from the previous line.
		var carretPrefixCount int
		if i == 0 {
			carretPrefixCount = span.StartCol - minIndent
		}

		// The number of characters at the end of the source line that should
		// not be underlined.  This is only ever non-zero on the last line.
		var carretSuffixCount int
		if i == len(lines)-1 {
			carretSuffixCount = len(line) - span.EndCol
		}

		// Skip underlining until the start column, then underline everything
		// up to the suffix.
		fmt.Print(strings.Repeat(" ", carretPrefixCount))
		fmt.Println(strings.Repeat("^", len(line)-carretSuffixCount-carretPrefixCount-minIndent))
	}

	fmt.Println()
}
