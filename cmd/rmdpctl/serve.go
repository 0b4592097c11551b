package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeu5/rmdp/api"
)

var servePort int

func serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only HTTP inspection API over a robust MDP",
		Run: func(cmd *cobra.Command, args []string) {
			m, err := loadModel()
			if err != nil {
				fatalf("load model: %v", err)
			}
			srv := api.New(context.Background(), m, servePort)
			fmt.Printf("serving on :%d\n", servePort)
			if err := srv.Start(); err != nil {
				fatalf("serve: %v", err)
			}
		},
	}
	cmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	return cmd
}
