package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/cli"
	"github.com/thenoetrevino/tablero/internal/config"
)

// ConfigFileResult reports where the config file was written
type ConfigFileResult struct {
	Path string `json:"path"`
}

// Human returns the human-readable form of the result
func (r ConfigFileResult) Human() string {
	return fmt.Sprintf("✓ Config written to %s", r.Path)
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		Args:  cli.NoArgs,
	}
	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configPathCmd())
	return cmd
}

func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration to the config file so it can be edited.
An existing file is kept unless --force is given.`,
		Args: cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cli.NewFormatter(cmd)
			path, err := config.Path()
			if err != nil {
				return cli.Fail(f, cli.ExitError, "CONFIG_ERROR", "%w", err)
			}

			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(path); err == nil && !force {
				return cli.Fail(f, cli.ExitValidation, "CONFIG_EXISTS",
					"config already exists at %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return cli.Fail(f, cli.ExitError, "CONFIG_ERROR", "%w", err)
			}

			if err := config.Default().Save(); err != nil {
				return cli.Fail(f, cli.ExitError, "CONFIG_ERROR", "failed to write config: %w", err)
			}
			return f.Success(ConfigFileResult{Path: path})
		},
	}
	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cli.AddOutputFlags(cmd)
	return cmd
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the config file is read from",
		Args:  cli.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
