package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/bahaa0627-dev/wanderlog/internal/catalog"
	"github.com/bahaa0627-dev/wanderlog/internal/config"
	"github.com/bahaa0627-dev/wanderlog/internal/fetch"
	"github.com/bahaa0627-dev/wanderlog/internal/run"
	"github.com/bahaa0627-dev/wanderlog/internal/simctl"
)

var (
	cfgFile     string
	workDir     string
	deviceUDID  string
	catalogFile string
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "simphotos",
	Short: "Import landmark test photos into the booted iOS Simulator",
	Long: `simphotos downloads a fixed set of landmark photos (Copenhagen, Paris,
Berlin) and adds them to the photo library of the currently booted iOS
Simulator via xcrun simctl, for use as test fixtures during development.

Boot a simulator first, then run without arguments.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return simctl.CheckXcrun()
	},
	RunE: runImport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/simphotos/config.yml)")
	rootCmd.Flags().StringVar(&workDir, "dir", "", "working directory for downloaded files")
	rootCmd.Flags().StringVar(&deviceUDID, "device", "", "simulator UDID to import into (default: the booted device)")
	rootCmd.Flags().StringVar(&catalogFile, "catalog", "", "YAML catalog file overriding the builtin photo set")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress download progress bars")
}

func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		return config.LoadFrom(cfgFile)
	}
	return config.Load()
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cat := catalog.Builtin()
	if path := firstNonEmpty(catalogFile, cfg.Catalog); path != "" {
		cat, err = catalog.LoadFrom(path)
		if err != nil {
			return err
		}
	}

	runner := &run.Runner{
		Source:     &simctl.CLI{Timeout: cfg.SimctlTimeout.Duration},
		Fetcher:    &fetch.Fetcher{Client: &http.Client{Timeout: cfg.HTTPTimeout.Duration}, Quiet: quiet},
		Catalog:    cat,
		Dir:        firstNonEmpty(workDir, cfg.TempDir),
		DeviceUDID: deviceUDID,
	}

	_, err = runner.Run(cmd.Context())
	if errors.Is(err, simctl.ErrNoBootedDevice) {
		return fmt.Errorf("no booted iOS Simulator found\nStart a simulator first (open -a Simulator), then run again")
	}
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}
