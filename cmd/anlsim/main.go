// Command anlsim is the reference ANL simulator binary. It runs the
// echo (broadcast-relay) example protocol; other protocols link against
// package cli directly to produce their own binary (see cmd/echo,
// cmd/alarm).
package main

import (
	"github.com/anl-sim/anl/cli"
	"github.com/anl-sim/anl/examples/echo"
)

func main() {
	cli.Execute("anlsim", echo.Main)
}
