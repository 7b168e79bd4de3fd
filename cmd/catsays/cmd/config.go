package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbmrq/catsays/internal/config"
	apperrors "github.com/dbmrq/catsays/internal/errors"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initC := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default configuration to ~/.catsays/config.yaml, or to the
path given with --config.

Use --force to overwrite an existing file.`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}
	initC.Flags().BoolP("force", "f", false, "Overwrite an existing file")

	showC := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after defaults and CATSAYS_* environment overrides are applied.",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	c.AddCommand(initC, showC)
	return c
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}

	if _, err := os.Stat(path); err == nil && !force {
		return apperrors.WithSuggestion(apperrors.ErrConfig,
			"config file already exists: "+path,
			"Use --force to overwrite it.").WithDetails("path", path)
	}

	if err := config.Save(config.NewConfig(), path); err != nil {
		return apperrors.Wrap(err, apperrors.ErrConfig, "failed to write config").WithDetails("path", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
