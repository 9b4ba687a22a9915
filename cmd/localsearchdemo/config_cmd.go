package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Work with run-configuration files",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a YAML run-configuration template with the default values",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeConfigTemplate(out, defaultRunConfig()); err != nil {
				return err
			}
			fmt.Println("wrote:", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "run.yaml", "path to write the config template to")
	return cmd
}
