// Package cli provides the command-line front-end shared by every ANL
// protocol binary. Grounded on sarchlab-akita's akita/cmd/root.go
// (a single cobra.Command with Execute()), generalized to accept the
// protocol-specific entry function a binary registers instead of
// hard-coding one command's behavior.
//
// This replaces original_source/include/anl/core/entry_point.h's
// EntryPointLoader/ANLIMPL_MAIN macro pair, which relied on C++ static
// initialization order to register a program's entry point before main
// ran. Go has no equivalent hook, and needs none: a protocol binary's
// own main function simply calls cli.Execute with its entry function
// directly.
package cli

import (
	"fmt"
	"os"

	"github.com/anl-sim/anl/anl"
	"github.com/anl-sim/anl/monitor"
	"github.com/anl-sim/anl/output"
	"github.com/spf13/cobra"
)

// Version is the banner printed by -v/--version. Overridable by
// callers that embed a build-time version string.
var Version = "dev"

// EntryFunc is a protocol's registered entry point. It receives the
// positional arguments left over after flag parsing and returns a
// process-style exit code; a nonzero return is reported but does not
// itself stop teardown (spec.md §6, "CLI surface").
type EntryFunc func(args []string) int

// XML reports whether -x/--xml was passed, once Execute has parsed
// flags. Protocol entry functions that build their own simulator.Builder
// read this to choose between output.NewText and output.NewXML.
var XML bool

// PprofAddr holds the value of --pprof-addr once Execute has parsed
// flags, or "" if it was not passed (spec.md §6.2, "domain-stack
// wiring"). Entry functions read it indirectly via Monitor.
var PprofAddr string

// TraceDB holds the value of --trace-db once Execute has parsed flags,
// or "" if it was not passed. Entry functions read it indirectly via
// TraceModule.
var TraceDB string

// Execute builds and runs the CLI for a single protocol binary named
// name, dispatching to entry once flags are parsed. It calls os.Exit
// itself: entry's return value becomes exit code 1 if nonzero (a
// configuration-level failure per spec.md §7), 0 otherwise. It never
// returns.
func Execute(name string, entry EntryFunc) {
	var showVersion bool

	root := &cobra.Command{
		Use:           name,
		Short:         fmt.Sprintf("%s runs an ANL discrete-event broadcast simulation.", name),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if showVersion {
				fmt.Printf("%s %s\n", name, Version)
				return nil
			}
			code := entry(args)
			if code != 0 {
				return fmt.Errorf("protocol entry function returned exit code %d", code)
			}
			return nil
		},
	}
	root.Flags().BoolVarP(&XML, "xml", "x", false, "select structured (XML-like) output instead of plain text")
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "print version and exit")
	root.Flags().StringVar(&PprofAddr, "pprof-addr", "", "start an HTTP monitoring server at host:port")
	root.Flags().StringVar(&TraceDB, "trace-db", "", "record a SQLite trace of the run at path")

	if err := root.Execute(); err != nil {
		anl.ConfigFatal("%v", err)
	}
	os.Exit(0)
}

// Monitor starts the HTTP monitoring server if --pprof-addr was passed
// and returns it ready to hand to simulator.Builder.WithMonitor; it
// returns nil if the flag was not passed. Must be called after Execute
// has parsed flags, i.e. from within an EntryFunc.
func Monitor() *monitor.Monitor {
	if PprofAddr == "" {
		return nil
	}
	mon := monitor.New()
	if _, err := mon.Serve(PprofAddr, false); err != nil {
		anl.ConfigFatal("%v", err)
	}
	return mon
}

// TraceModule opens a SQLite trace output.Module if --trace-db was
// passed and returns it ready to hand to
// simulator.Builder.WithOutputModule; it returns nil if the flag was not
// passed. Must be called after Execute has parsed flags, i.e. from
// within an EntryFunc.
func TraceModule() output.Module {
	if TraceDB == "" {
		return nil
	}
	return output.NewSQLiteTrace(TraceDB)
}
