package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "yasl",
		Short:        "yasl",
		SilenceUsage: true,
		Long:         `CLI tool for the YASL lexical analyzer; dumps and checks the token streams of *.yasl files.`,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
