// Command softscsi exercises the emulated SCSI hard disk against an image
// file.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ardnew/softscsi/pkg"
)

func main() {
	os.Exit(execute(newRootCmd()))
}

// execute runs cmd and returns the process exit code. Failures are logged
// on the command's error stream.
func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		pkg.LogError(pkg.ComponentCLI, "command failed",
			"command", cmd.CalledAs(),
			"error", err)
		return 1
	}
	return 0
}
