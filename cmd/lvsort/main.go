// Command lvsort prints lists before and after sorting them with bubble,
// insertion or selection sort, optionally tracing every pass.
package main

import (
	"os"

	"github.com/katalvlaran/lvsort/internal/cmd"
	"github.com/katalvlaran/lvsort/internal/logger"
)

func main() {
	if err := cmd.Main(os.Args, os.Stdout, os.Stderr); err != nil {
		logger.GetLogger("lvsort").Fatal(err)
	}
}
