package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tsawler/posture/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list DIR",
	Short: "List the posture tools in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recursive, _ := cmd.Flags().GetBool("recursive")
		jobs, _ := cmd.Flags().GetInt("jobs")

		entries, err := catalog.Scan(cmd.Context(), args[0], catalog.Options{
			Recursive:   recursive,
			Concurrency: jobs,
		})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tICON\tFILE\tSTATUS")
		for _, e := range entries {
			icon := "-"
			if e.Icon != nil {
				b := e.Icon.Bounds()
				icon = fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
			}
			status := "ok"
			if e.Err != nil {
				status = "error: " + e.Err.Error()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, icon, e.Path, status)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().BoolP("recursive", "r", false, "Scan subdirectories too")
	listCmd.Flags().IntP("jobs", "j", 0, "Documents loaded in parallel (default: number of CPUs)")
	rootCmd.AddCommand(listCmd)
}
