package console

import (
	"fmt"
	"io"
	"os"

	"github.com/TwiN/go-color"
)

// Destination for console output.
var Out io.Writer = os.Stdout

var verbose bool

// Enable or disable verbose output.
func SetVerbose(v bool) {
	verbose = v
}

// Returns true if verbose output is enabled.
func IsVerbose() bool {
	return verbose
}

// Log verbose message to console.
// Only printed when verbose output is enabled.
func Verbose(message string, vars ...any) {
	if !verbose {
		return
	}
	fmt.Fprintf(Out, color.Ize(color.Gray, message+"\n"), vars...)
}

// Log success message to console.
func Success(message string, vars ...any) {
	fmt.Fprintf(Out, color.Ize(color.Green, message+"\n"), vars...)
}

// Log info message to console.
func Info(message string, vars ...any) {
	fmt.Fprintf(Out, color.Ize(color.Cyan, message+"\n"), vars...)
}

// Log warning message to console.
func Warning(message string, vars ...any) {
	fmt.Fprintf(Out, color.Ize(color.Yellow, message+"\n"), vars...)
}

// Build a colored error to return to the user.
func Error(message string, vars ...any) error {
	return fmt.Errorf(color.Ize(color.Red, message), vars...)
}

// Log error message to console.
func ErrorPrint(message string, vars ...any) {
	fmt.Fprintf(Out, color.Ize(color.Red, message+"\n"), vars...)
}

// Log error message to console and exit.
func Fatal(message string, vars ...any) {
	ErrorPrint(message, vars...)
	os.Exit(1)
}
