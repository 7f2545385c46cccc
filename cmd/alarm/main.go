// Command alarm runs the sensor/repeater/central-unit alarm-reporting
// example protocol standalone.
package main

import (
	"github.com/anl-sim/anl/cli"
	"github.com/anl-sim/anl/examples/alarm"
)

func main() {
	cli.Execute("alarm", alarm.Main)
}
