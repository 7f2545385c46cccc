package anl

import (
	"fmt"
	"log"
	"os"
)

// Logger is the side channel that carries diagnostic and progress lines.
// It writes to stderr with no extra prefix; callers add their own "Log: "
// or "[ INFO ]"-style markers, mirroring the two message shapes the
// original simulator printed to stderr.
var Logger = log.New(os.Stderr, "", 0)

// sectionStack tracks what the simulator is currently doing, so that a
// fatal contract violation can be reported with a human-readable trace of
// the call path that triggered it. The simulator is single-threaded and
// strictly sequential (spec.md §5), so a single package-level stack is
// sufficient and never needs synchronization.
var sectionStack []string

// Enter pushes a named section onto the trace stack. The returned function
// must be called to leave the section, typically via defer:
//
//	defer anl.Enter("Simulator.RunSlot")()
func Enter(name string) func() {
	sectionStack = append(sectionStack, name)
	return func() {
		sectionStack = sectionStack[:len(sectionStack)-1]
	}
}

// Require asserts a programmer contract. If cond is false, it prints the
// message together with the current section stack to stderr and terminates
// the process with exit code 2, per spec.md §7. There is no recoverable
// error path for a contract violation.
func Require(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	fmt.Fprintf(os.Stderr, "[FATAL] %s\n", fmt.Sprintf(format, args...))
	fmt.Fprintln(os.Stderr, "Section stack:")
	for i := len(sectionStack) - 1; i >= 0; i-- {
		fmt.Fprintf(os.Stderr, "  in %s\n", sectionStack[i])
	}
	if len(sectionStack) == 0 {
		fmt.Fprintln(os.Stderr, "  (no section entered)")
	}
	os.Exit(2)
}

// Expect checks a non-fatal expectation. Unlike Require, a failed
// expectation is only logged as a warning on the diagnostic channel; the
// simulator keeps running. This is used for leniency cases such as an
// unregistered message being used in a trait (spec.md §4.2, §7).
func Expect(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	Logger.Printf("Log: [WARN] %s", fmt.Sprintf(format, args...))
}

// ConfigFatal reports a configuration error (missing entry point,
// malformed CLI arguments) to stderr and terminates with exit code 1,
// before any slot has run. This is distinct from Require, which reports
// programmer contract violations with exit code 2.
func ConfigFatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[CONFIG ERROR] %s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}

// ConfigFatalIf calls ConfigFatal when cond is true. It reads naturally
// at call sites that check an error value: ConfigFatalIf(err != nil, ...).
func ConfigFatalIf(cond bool, format string, args ...interface{}) {
	if cond {
		ConfigFatal(format, args...)
	}
}
