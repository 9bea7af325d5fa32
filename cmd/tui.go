package cmd

import (
	"log"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/improperdecoherence/chordlab/config"
	"github.com/improperdecoherence/chordlab/db"
	"github.com/improperdecoherence/chordlab/finder"
	"github.com/improperdecoherence/chordlab/tui"
)

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive chord finder",
	Long:  `Interactive chord finder: type note names and watch the matching chords update.`,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func runTUI() {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("bad config: %v", err)
	}

	f := finder.NewFinder(db.New(cfg.Arity))
	if s, ok := f.CurrentGenerator().Setting("Distance"); ok {
		if err := s.SetValue(strconv.Itoa(cfg.Distance)); err != nil {
			log.Fatalf("bad default distance: %v", err)
		}
	}

	p := tea.NewProgram(tui.NewModel(f, cfg.NoteStyle()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui failed: %v", err)
	}
}
