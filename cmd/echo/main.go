// Command echo runs the broadcast-relay example protocol standalone.
package main

import (
	"github.com/anl-sim/anl/cli"
	"github.com/anl-sim/anl/examples/echo"
)

func main() {
	cli.Execute("echo", echo.Main)
}
