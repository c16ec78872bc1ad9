package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/recipe"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the config and compile the recipe without running it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if _, err := recipe.Compile(cfg.Recipe, newLogger(cmd, cfg)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recipe %q ok: %d steps\n", cfg.Recipe.Name, len(cfg.Recipe.Steps))
			return err
		},
	}
}
