package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/improperdecoherence/chordlab/config"
	"github.com/improperdecoherence/chordlab/db"
	"github.com/improperdecoherence/chordlab/note"
)

var findDistance int

func init() {
	findCmd.Flags().IntVar(&findDistance, "distance", 0, "number of notes allowed to differ")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find [notes...]",
	Short: "Finds chords matching the given notes",
	Long:  `Finds chords matching the given notes, e.g. chordlab find C4 E4 G4 Bb4`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		find(args)
	},
}

func find(names []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("bad config: %v", err)
	}

	values, err := note.ValuesOf(names)
	if err != nil {
		log.Fatalf("%v", err)
	}

	database := db.New(cfg.Arity)
	matches, err := database.MatchIntervals(values, findDistance)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if len(matches) == 0 {
		fmt.Println("no matching chords")
		return
	}

	style := cfg.NoteStyle()
	for _, c := range matches {
		fmt.Printf("%-12v %-28v %v\n",
			c.ShortName(style),
			c.LongName(style),
			strings.Join(c.NoteNames(style, true), " "))
	}
}
