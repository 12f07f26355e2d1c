package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tembolo1284/mcpricing/engine"
)

// VersionString reports the engine's semantic version, reused as the root
// command's --version output.
func VersionString() string {
	return engine.VersionString()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the engine version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(engine.VersionString())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
