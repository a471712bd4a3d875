package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "timeclockctl",
	Short: "Operational tasks for the timeclock backend",
	Long: `timeclockctl runs operational tasks against the timeclock database:
auto-closing forgotten check-ins, creating users and repairing data.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
