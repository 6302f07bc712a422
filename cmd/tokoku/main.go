package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tokoku",
	Short: "TokoKu — WhatsApp storefront CLI",
	Long:  "TokoKu is a small shop backend: catalog, session cart, WhatsApp checkout and sales reporting.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(provisionCmd)
	rootCmd.AddCommand(seedCmd)
}
