package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var hostURL string
	var dump bool
	var rootCmd = &cobra.Command{Use: "cli", Short: "operates the boosto sale node"}
	rootCmd.PersistentFlags().StringVar(&hostURL, "host", "http://localhost:48000", "url of the node to access")
	rootCmd.PersistentFlags().BoolVar(&dump, "dump", false, "dumps the go value of the result")
	p := &printer{dump: &dump}
	rootCmd.AddCommand(tokenCommand(&hostURL, p))
	rootCmd.AddCommand(icoCommand(&hostURL, p))
	rootCmd.AddCommand(whiteListCommand(&hostURL, p))
	rootCmd.AddCommand(chainCommand(&hostURL, p))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
