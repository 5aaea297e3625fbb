package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/ruminaider/remsync/internal/commands"
)

const (
	menuManage  = "Manage/run individual preset"
	menuSyncAll = "Sync all presets (local -> remote)"
	menuDelete  = "Delete a preset"
	menuQuit    = "Quit"
)

func runMainMenu(cmd *cobra.Command, args []string) error {
	// TTY guard: without a terminal there is no menu to navigate
	// (piping, CI, scripts).
	if !term.IsTerminal(os.Stdin.Fd()) {
		return cmd.Help()
	}

	for {
		choice, err := runPicker("remsync — main menu",
			[]string{menuManage, menuSyncAll, menuDelete, menuQuit})
		if err != nil {
			return err
		}

		switch choice {
		case menuManage:
			if err := commands.ManagePresets(deps()); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case menuSyncAll:
			if err := syncAllCmd.RunE(syncAllCmd, nil); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case menuDelete:
			if err := runDeleteMenu(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case menuQuit, "":
			return nil
		}
	}
}

func runDeleteMenu() error {
	d := deps()
	all := d.Store.Load()
	if all.Len() == 0 {
		fmt.Println("There are no presets to delete.")
		return nil
	}
	name, err := d.Prompt.Select("Choose a preset to delete", all.Names())
	if err != nil {
		return nil
	}
	return commands.DeletePreset(d, name)
}
