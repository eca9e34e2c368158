package cmd

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/handcheck/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the configuration file",
}

// configPathCmd prints where the config file lives
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFilePath())
	},
}

// configShowCmd prints the effective configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration, flags included",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		encoder := toml.NewEncoder(cmd.OutOrStdout())
		if err := encoder.Encode(cfg); err != nil {
			return fmt.Errorf("error encoding config: %v", err)
		}
		return nil
	},
}

// configSetCmd updates one key in the config file
var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a config value",
	Long: `Set updates one key in the config file. Keys: color, show_help,
show_detail, log_level, log_format, listen_addr.

Examples:
  handcheck config set color never
  handcheck config set show_detail true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		// Start from the file, not the flag-adjusted config
		fileConfig, err := config.LoadConfig()
		if err != nil {
			return err
		}

		if err := setConfigValue(fileConfig, key, value); err != nil {
			return err
		}

		if err := config.Save(fileConfig); err != nil {
			return fmt.Errorf("error saving config: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s set to: %s\n", key, value)
		return nil
	},
}

// setConfigValue assigns value to the field named by key
func setConfigValue(c *config.Config, key, value string) error {
	switch key {
	case "color":
		c.Color = value
	case "show_help", "show_detail":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q is not a boolean", key, value)
		}
		if key == "show_help" {
			c.ShowHelp = b
		} else {
			c.ShowDetail = b
		}
	case "log_level":
		c.LogLevel = value
	case "log_format":
		c.LogFormat = value
	case "listen_addr":
		c.ListenAddr = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
