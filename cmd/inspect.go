package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/improperdecoherence/chordlab/config"
	"github.com/improperdecoherence/chordlab/db"
	"github.com/improperdecoherence/chordlab/util"
)

var inspectVerbose bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectVerbose, "verbose", false, "list every signature bucket")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects the chord database",
	Long:  `Inspects the chord database`,
	Run: func(cmd *cobra.Command, args []string) {
		inspect()
	},
}

func inspect() {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("bad config: %v", err)
	}

	database := db.New(cfg.Arity)
	sizes := database.BucketSizes()

	largest := 0
	largestSignature := 0
	for signature, size := range sizes {
		if size > largest {
			largest = size
			largestSignature = signature
		}
	}

	fmt.Printf("arity: %v\n", database.Arity())
	fmt.Printf("chords: %v\n", database.Size())
	fmt.Printf("signatures: %v\n", database.NumSignatures())
	fmt.Printf("largest bucket: %012b (%v chords)\n", largestSignature, largest)

	if !inspectVerbose {
		return
	}

	style := cfg.NoteStyle()
	for _, signature := range util.SortedKeys(sizes) {
		chords, _ := database.MatchIntervals(signatureIntervals(signature), 0)
		fmt.Printf("%012b:", signature)
		for _, c := range chords {
			fmt.Printf(" %v", c.ShortName(style))
		}
		fmt.Println()
	}
}

// signatureIntervals unpacks a signature back into a pitch-class list.
func signatureIntervals(signature int) []int {
	var intervals []int
	for bit := 0; bit < 12; bit++ {
		if signature&(1<<bit) != 0 {
			intervals = append(intervals, bit)
		}
	}
	return intervals
}
