package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/improperdecoherence/chordlab/config"
	"github.com/improperdecoherence/chordlab/db"
	"github.com/improperdecoherence/chordlab/midi"
	"github.com/improperdecoherence/chordlab/note"
)

var listenPort int

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI input port number")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords live from a MIDI input",
	Long:  `Names chords live from a MIDI input`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func printMatches(database *db.ChordDatabase, values []int, distance int, style note.Style) {
	if len(values) == 0 {
		return
	}

	matches, err := database.MatchIntervals(values, distance)
	if err != nil {
		log.Printf("match failed: %v", err)
		return
	}

	names := make([]string, 0, len(matches))
	for _, c := range matches {
		names = append(names, c.ShortName(style))
	}
	fmt.Printf("%v -> %v\n", note.NamesOf(values, style, true), strings.Join(names, " "))
}

func listen() {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("bad config: %v", err)
	}

	defer gomidi.CloseDriver()
	in, err := gomidi.InPort(listenPort)
	if err != nil {
		log.Fatalf("can't find MIDI input %v: %v", listenPort, err)
	}

	database := db.New(cfg.Arity)
	log.Printf("chord database ready: %v chords", database.Size())

	pressed := make(map[uint8]bool)
	// a struck chord arrives as a burst of note-ons; wait for the burst to
	// settle before naming it
	debounced := debounce.New(50 * time.Millisecond)

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var channel, key, velocity uint8
		switch {
		case msg.GetNoteStart(&channel, &key, &velocity):
			pressed[key] = true
		case msg.GetNoteEnd(&channel, &key):
			delete(pressed, key)
		default:
			return
		}

		// snapshot here: the debounced call runs on a timer goroutine
		values := make([]int, 0, len(pressed))
		for key := range pressed {
			values = append(values, midi.NoteValue(key))
		}
		sort.Ints(values)

		debounced(func() {
			printMatches(database, values, cfg.Distance, cfg.NoteStyle())
		})
	})
	if err != nil {
		log.Fatalf("could not listen: %v", err)
	}
	defer stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
}
