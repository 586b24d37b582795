package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mdlink/mdlink/internal/config"
	"github.com/mdlink/mdlink/internal/scripting"
	"github.com/mdlink/mdlink/internal/ui"
)

// interactiveCmd represents the interactive command.
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Try URLs in a terminal UI",
	Long: `Launch an interactive terminal UI for rendering URLs.

Type or paste a URL to see its rendered Markdown link live, switch
between configured profiles to compare their styles, and recall
earlier renderings from the session history.

Controls:
  enter         Render the URL and add it to the history
  tab           Cycle through configured profiles
  ↑/↓           Recall older/newer history entries
  esc           Clear the input
  ctrl+c        Quit`,
	Run: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// runInteractive builds one renderer per configured profile and hands
// them to the TUI.
func runInteractive(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError(err, "Error loading config")

	engine, err := loadScript()
	exitOnError(err, "Error loading script")

	if profileName != "" {
		_, err := resolveLayers(cfg, profileName)
		exitOnError(err, "Error resolving profile")
	}

	profiles, err := buildProfiles(cfg, engine)
	exitOnError(err, "Error building renderers")

	p := tea.NewProgram(ui.New(profiles))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running interactive mode: %v\n", err)
		os.Exit(1)
	}
}

// buildProfiles builds a renderer for the general configuration and one
// for every named profile, so the TUI can cycle without reloading
// config. A --profile selection moves that profile to the front and the
// session starts on it.
func buildProfiles(cfg *config.Config, engine *scripting.Engine) ([]ui.Profile, error) {
	names := append([]string{""}, cfg.ProfileNames()...)

	profiles := make([]ui.Profile, 0, len(names))
	for _, name := range names {
		renderer, _, err := buildRenderer(cfg, engine, name, SkipFlags{})
		if err != nil {
			return nil, err
		}
		display := name
		if display == "" {
			display = "general"
		}
		profiles = append(profiles, ui.Profile{Name: display, Renderer: renderer})
	}

	if profileName != "" {
		for i, p := range profiles {
			if p.Name == profileName {
				profiles[0], profiles[i] = profiles[i], profiles[0]
				break
			}
		}
	}

	return profiles, nil
}
