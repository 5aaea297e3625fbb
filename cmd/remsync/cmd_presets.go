package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List stored presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := deps()
		all := d.Store.Load()
		if all.Len() == 0 {
			fmt.Println("No presets stored.")
			return nil
		}
		for _, name := range all.Names() {
			p, _ := all.Get(name)
			fmt.Printf("%s\n  %s -> %s:%s\n", name, p.LocalPath, p.RemoteName, p.RemotePath)
			if len(p.Ignores) > 0 {
				fmt.Printf("  ignores: %s\n", strings.Join(p.Ignores, ", "))
			}
		}
		return nil
	},
}
