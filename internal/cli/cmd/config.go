package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/swipenav/internal/cli/styles"
	"github.com/bnema/swipenav/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show, validate or initialize the configuration and print its JSON schema.`,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [FILE]",
	Short: "Check a config file against the schema",
	Long: `Check a config file against the JSON schema and the value rules applied at
load time. Unknown keys are reported. Without FILE the active config file
is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, the config file and SWIPENAV_*
environment variables have been applied.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long:  `Print the JSON schema, or write it next to the config file with --write.`,
	RunE:  runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with all defaults",
	Long: `Write config.toml with every setting at its default value, plus the JSON
schema next to it for editor completion. Existing files are kept unless
--force is given.`,
	RunE: runConfigInit,
}

var configSchemaWrite bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write the schema file instead of printing it")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

// runConfigShow prints the effective configuration.
func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.GetConfigFile()
	if path == "" {
		if p, err := resolveConfigPath(); err == nil {
			path = p
		}
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	fmt.Fprint(cmd.ErrOrStderr(), renderer.RenderConfigInfo(path, app.Manager.GetConfigFile() != ""))
	fmt.Fprintln(cmd.ErrOrStderr())
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// runConfigSchema prints or writes the JSON schema.
func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	if configSchemaWrite {
		path, err := config.GetSchemaFile()
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
			return err
		}
		if err := config.WriteSchemaFile(path); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWritten("schema", path))
		return nil
	}

	data, err := config.SchemaJSON()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// runConfigInit writes the default configuration and its schema.
func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path, err := resolveConfigPath()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}

	written, err := initConfigFile(path, configForce)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	if !written {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderExists(path))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWritten("defaults", path))

	if schemaPath, err := config.GetSchemaFile(); err == nil && configFile == "" {
		if err := config.WriteSchemaFile(schemaPath); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWritten("schema", schemaPath))
	}
	return nil
}

// runConfigValidate validates a config file.
func runConfigValidate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		p, err := resolveConfigPath()
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
			return err
		}
		path = p
	}

	if err := validateConfigFile(path); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderValid(path))
	return nil
}

func validateConfigFile(path string) error {
	validator, err := config.NewFileValidator()
	if err != nil {
		return err
	}
	return validator.ValidateFile(path)
}

// resolveConfigPath returns --config or the XDG config file.
func resolveConfigPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigFile()
}

// initConfigFile writes the defaults to path. It reports false without
// touching the file when it exists and force is not set.
func initConfigFile(path string, force bool) (bool, error) {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return false, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("stat %s: %w", path, err)
		}
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return false, err
	}
	return true, nil
}
