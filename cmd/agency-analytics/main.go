// Command agency-analytics computes project financials, agency health,
// budget variance and a 12-month forecast from a YAML dataset.
package main

import (
	"os"
	"time"
)

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}
