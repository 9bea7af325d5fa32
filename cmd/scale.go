package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/improperdecoherence/chordlab/chord"
	"github.com/improperdecoherence/chordlab/config"
	"github.com/improperdecoherence/chordlab/scale"
)

func init() {
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale [key] [scale name]",
	Short: "Prints a scale with its degrees and diatonic triads",
	Long:  `Prints a scale with its degrees and diatonic triads, e.g. chordlab scale C "Natural Major". Without arguments it lists the known scales.`,
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			for _, name := range scale.TemplateNames() {
				fmt.Println(name)
			}
			return
		}
		printScale(args[0], args[1])
	},
}

func printScale(key, name string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("bad config: %v", err)
	}

	s, err := scale.FromNames(key, name)
	if err != nil {
		log.Fatalf("%v", err)
	}

	style := cfg.NoteStyle()
	fmt.Printf("%v: %v\n", s.Name(style), strings.Join(s.NoteNames(style), " "))

	triads := s.ChordsOfScale()
	for i, c := range triads {
		degree := i + 1
		t := c.Template()
		upper := t == chord.Major || t == chord.Augmented
		fmt.Printf("%-5v %-12v %-8v %v\n",
			scale.DegreeRoman(degree, upper),
			scale.DegreeName(degree),
			c.ShortName(style),
			c.LongName(style))
	}
}
