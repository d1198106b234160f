package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/posture"
)

var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Print a tool's name and icon size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl := posture.Open(args[0]).InfoOnly().Template()

		out := cmd.OutOrStdout()
		name := tpl.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(out, "Name: %s\n", name)
		if tpl.Icon == nil {
			fmt.Fprintln(out, "Icon: none")
			return nil
		}
		b := tpl.Icon.Bounds()
		fmt.Fprintf(out, "Icon: %dx%d\n", b.Dx(), b.Dy())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
