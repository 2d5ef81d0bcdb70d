package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nxdevel/nx-misc/internal/config"
	"github.com/nxdevel/nx-misc/internal/errors"
	"github.com/nxdevel/nx-misc/pkg/timeutil"
)

var initForce bool

// initCmd creates a new .nx.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .nx.yaml configuration",
	Long: `Initialize a new nx configuration file in the current directory.

Prompts for the timezone and color mode, then writes .nx.yaml.

Examples:
  nx init
  nx init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func initCommand(force bool) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	var timezone string
	colorMode := "auto"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timezone").
				Description("IANA zone name; leave empty to use the system zone").
				Placeholder("America/Detroit (leave empty for system zone)").
				Value(&timezone).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					_, err := timeutil.LoadZone(strings.TrimSpace(s))
					return err
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color output").
				Options(
					huh.NewOption("Auto (detect terminal)", "auto"),
					huh.NewOption("Always", "always"),
					huh.NewOption("Never", "never"),
				).
				Value(&colorMode),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility")
	}

	cfg := config.DefaultConfig()
	cfg.Timezone = strings.TrimSpace(timezone)
	cfg.Output.Color = colorMode

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# nx configuration
# Run 'nx --help' for available commands

`
	if err := os.WriteFile(configPath, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n", styled(ColorSuccess, SymbolSuccess), configPath)
	return nil
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}
