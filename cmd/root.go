package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "chordlab",
	Short: "Chord finder and music theory toolbox",
	Long:  `Chordlab matches played notes against a database of known chords and answers scale and chord theory questions.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default chordlab.yml if present)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
