package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scorepoint",
	Short: "Click-to-score resolution",
	Long:  `Turns pixel clicks over a rendered score into measures, staves, note events and pitches.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
