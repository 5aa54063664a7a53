package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List the services keep-alive can check",
	Args:  usageArgs(cobra.NoArgs),
	RunE:  runServices,
}

func init() {
	rootCmd.AddCommand(servicesCmd)
}

func runServices(cmd *cobra.Command, args []string) error {
	exec := application().Executor

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SERVICE\tBINARY")
	for _, name := range registry().Names() {
		path, err := exec.LookPath(name)
		if err != nil {
			path = "not found"
		}
		fmt.Fprintf(w, "%s\t%s\n", name, path)
	}
	return w.Flush()
}
