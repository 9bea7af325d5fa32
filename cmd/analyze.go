package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/improperdecoherence/chordlab/midi"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [midi file]",
	Short: "Prints the chord progression of a MIDI file",
	Long:  `Prints the chord progression of a MIDI file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(args[0])
	},
}

func analyze(path string) {
	s, err := midi.ReadFile(path)
	if err != nil {
		log.Fatalf("could not read %v: %v", path, err)
	}

	progression := midi.ExtractChords(s)
	if len(progression) == 0 {
		fmt.Println("no chords found")
		return
	}

	for _, tc := range progression {
		fmt.Printf("%8.2fs  %-12v %-28v %v\n",
			float64(tc.OffsetMS)/1000,
			tc.ShortName,
			tc.LongName,
			strings.Join(tc.NoteNames, " "))
	}
}
