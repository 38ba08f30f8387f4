package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ministry/cmd/client/cmd/material"
	"ministry/internal/app/client"
	"ministry/internal/app/client/config"
	"ministry/internal/utils/logger"
)

var (
	cfgFile   string
	debug     bool
	noColor   bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "ministry",
	Short: "Ministry - service materials catalog client",
	Long: `Ministry is a command line client for the church service materials catalog.

It lists, uploads, updates and deletes service materials (banners, orders of
service, song lists, prayer scripts, ...) and shows the media gallery.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if noColor {
		color.NoColor = true
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	}
	log := logger.NewWithLevel(cfg.Env, level)

	cmd.SetContext(client.WithApp(cmd.Context(), client.New(cfg, log)))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server address, host:port")

	rootCmd.AddCommand(material.MaterialsCmd)
	material.MaterialsCmd.AddCommand(material.ListCmd)
	material.MaterialsCmd.AddCommand(material.GetCmd)
	material.MaterialsCmd.AddCommand(material.UploadCmd)
	material.MaterialsCmd.AddCommand(material.UpdateCmd)
	material.MaterialsCmd.AddCommand(material.DeleteCmd)

	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(healthCmd)
}
