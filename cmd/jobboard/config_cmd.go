package main

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"jobboard/internal/config"
)

func newConfigCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Args:  cobra.NoArgs,
		Short: "Inspect and maintain config.yml",
	}
	cmd.AddCommand(
		newConfigValidateCommand(opts),
		newConfigNormalizeCommand(opts),
		newConfigPathCommand(opts),
	)
	return cmd
}

func newConfigValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Args:  cobra.NoArgs,
		Short: "Report config errors and warnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			_, vr := config.NormalizeAndValidate(a.cfg)
			w := cmd.OutOrStdout()
			for _, e := range vr.Errors {
				fmt.Fprint(w, pterm.Error.Sprintln(e))
			}
			for _, warn := range vr.Warnings {
				fmt.Fprint(w, pterm.Warning.Sprintln(warn))
			}
			if !vr.OK() {
				return errors.New("config has errors")
			}
			fmt.Fprint(w, pterm.Success.Sprintln(a.cfgPath+" is valid"))
			return nil
		},
	}
}

func newConfigNormalizeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize",
		Args:  cobra.NoArgs,
		Short: "Rewrite config.yml in normalized form, keeping a .bak copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			normalized, _ := config.NormalizeAndValidate(cfg)
			if err := config.SaveAtomic(a.cfgPath, normalized); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintln("wrote "+a.cfgPath))
			return nil
		},
	}
}

func newConfigPathCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Args:  cobra.NoArgs,
		Short: "Print the config file in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.cfgPath)
			return nil
		},
	}
}
