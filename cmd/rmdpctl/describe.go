package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func describeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print a human-readable summary of a robust MDP",
		Run: func(cmd *cobra.Command, args []string) {
			m, err := loadModel()
			if err != nil {
				fatalf("load model: %v", err)
			}
			fmt.Print(m.String())
			if !m.IsNormalized() {
				fmt.Println("warning: one or more transitions are not normalized")
			}
		},
	}
}
