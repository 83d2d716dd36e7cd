package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frckit/pitcrew/internal/errors"
	"github.com/frckit/pitcrew/internal/preferences"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show resolved preferences per workspace folder",
	Long: `Show the preferences pitcrew resolved for every open workspace folder:
language family, online/offline build mode, stop-on-entry behavior, and
team number. Folders without a preference file show defaults.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPrefs(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runPrefs() error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	for _, folder := range s.source.Folders() {
		store := s.prefs.Preferences(folder)
		fmt.Printf("%s (%s)\n", folder.Name, folder.Path)
		if store == nil {
			fmt.Println("  no preferences resolved")
			continue
		}
		fmt.Printf("  language:      %s\n", store.CurrentLanguage())
		fmt.Printf("  online:        %t\n", store.Online())
		fmt.Printf("  stop on entry: %t\n", store.StopOnEntry())
		if team := store.TeamNumber(); team > 0 {
			fmt.Printf("  team number:   %d\n", team)
		} else {
			fmt.Printf("  team number:   unset\n")
		}
		if store.CurrentLanguage() == preferences.LanguageNone {
			fmt.Printf("  note: declare a language in %s to scope deploy support\n", preferences.PreferencesFile)
		}
	}
	return nil
}
