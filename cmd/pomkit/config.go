// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"pomkit/internal/config"

	"github.com/spf13/cobra"
)

var (
	// configCmd manages the pomkit tool configuration.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage pomkit configuration",
		Long: `Manage pomkit configuration.

Configuration is stored in:
  - Linux: ~/.config/pomkit/config.toml
  - macOS: ~/Library/Application Support/pomkit/config.toml
  - Windows: %APPDATA%\pomkit\config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE:  runConfigInit,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE:  runConfigPath,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if path, pathErr := configFilePath(); pathErr == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			fmt.Fprintf(out, "%s: %s\n", SubtitleStyle.Render("Config file"), path)
		} else {
			fmt.Fprintf(out, "%s: %s\n", SubtitleStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "default_packaging: %s\n", SuccessStyle.Render(cfg.DefaultPackaging))
	fmt.Fprintf(out, "pom_file_name: %s\n", SuccessStyle.Render(cfg.PomFileName))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "ui:")
	fmt.Fprintf(out, "  verbose: %s\n", SuccessStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.CreateDefaultConfig(); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	path, err := configFilePath()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	path, err := configFilePath()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(out, "Config file: %s\n", path)

	return nil
}

// configFilePath returns the conventional config file location.
func configFilePath() (string, error) {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt), nil
}
