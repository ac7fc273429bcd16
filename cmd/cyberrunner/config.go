package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/cyberrunner/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner configuration",
	Long: `Print the default runner configuration as YAML. Save it to
~/.cyberrunner/configs/runner.yaml or ./configs/runner.yaml and edit it to tune
the game.

With --effective, print the configuration the game would use after the
search path, --config and --difficulty are applied.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration")
}

func runConfig(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	if !flagEffective {
		fmt.Fprint(out, string(config.DefaultYAML()))
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fail(err)
	}
	fmt.Fprint(out, string(data))
}
