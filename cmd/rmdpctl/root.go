// Command rmdpctl is a CLI for building, inspecting, and simulating
// robust MDPs, structured after the teacher's benchmarks.GetRootCommand:
// a root *cobra.Command carrying persistent flags shared by its
// subcommands, each subcommand added via AddCommand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string
	withHeader bool
)

func getRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "rmdpctl",
		Short: "Inspect, transform, and simulate robust MDPs",
	}
	root.PersistentFlags().StringVarP(&inputFile, "in", "i", "", "input CSV file (defaults to stdin)")
	root.PersistentFlags().StringVarP(&outputFile, "out", "o", "", "output CSV file (defaults to stdout)")
	root.PersistentFlags().BoolVar(&withHeader, "header", true, "read/write a CSV header row")

	root.AddCommand(describeCommand())
	root.AddCommand(normalizeCommand())
	root.AddCommand(exportCommand())
	root.AddCommand(simulateCommand())
	root.AddCommand(serveCommand())
	return root
}

func main() {
	if err := getRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
