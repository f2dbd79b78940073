package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil {
		fmt.Fprintf(os.Stdout, "No config file found at %s; built-in defaults apply.\n", cfgFile)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	fmt.Fprintf(os.Stdout, "# %s\n%s", cfgFile, data)
	return nil
}
