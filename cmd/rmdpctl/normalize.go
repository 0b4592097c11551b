package main

import "github.com/spf13/cobra"

func normalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Short: "Rescale every transition's probabilities to sum to one and write the result",
		Run: func(cmd *cobra.Command, args []string) {
			m, err := loadModel()
			if err != nil {
				fatalf("load model: %v", err)
			}
			if err := m.Normalize(); err != nil {
				fatalf("normalize: %v", err)
			}
			if err := writeModel(m); err != nil {
				fatalf("write model: %v", err)
			}
		},
	}
}
