package main

import "github.com/spf13/cobra"

var (
	inHeader  bool
	outHeader bool
)

func exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Re-serialize a robust MDP, optionally toggling the header row",
		Run: func(cmd *cobra.Command, args []string) {
			withHeader = inHeader
			m, err := loadModel()
			if err != nil {
				fatalf("load model: %v", err)
			}
			withHeader = outHeader
			if err := writeModel(m); err != nil {
				fatalf("write model: %v", err)
			}
		},
	}
	cmd.Flags().BoolVar(&inHeader, "in-header", true, "input has a CSV header row")
	cmd.Flags().BoolVar(&outHeader, "out-header", true, "write a CSV header row")
	return cmd
}
