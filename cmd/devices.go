package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bahaa0627-dev/wanderlog/internal/simctl"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List simulators known to simctl",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cli := &simctl.CLI{Timeout: cfg.SimctlTimeout.Duration}
		devices, err := cli.ListDevices(cmd.Context())
		if err != nil {
			return err
		}

		if len(devices) == 0 {
			fmt.Println("No simulators found.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tUDID\tSTATE")
		fmt.Fprintln(w, "────\t────\t─────")
		for _, d := range devices {
			state := d.State
			if d.Booted() {
				state += " *"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.Name, d.UDID, state)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
