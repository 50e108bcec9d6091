// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli turns the command line into actions.
//
// The command tree is generated from the action catalogue: one command per
// backend kind and under it one command per operation the kind supports,
// named after the operation. Payload fields become flags. Without a
// subcommand the interactive UI starts.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-arr-keeper/internal/app"
	"github.com/MKhiriev/go-arr-keeper/internal/client"
	"github.com/MKhiriev/go-arr-keeper/internal/config"
	"github.com/MKhiriev/go-arr-keeper/internal/runner"
	"github.com/MKhiriev/go-arr-keeper/models"
	"github.com/spf13/cobra"
)

// Options configures the command tree. Zero fields take production defaults.
type Options struct {
	BuildInfo models.AppBuildInfo
	Stdout    io.Writer
	Stderr    io.Writer

	// NewApp builds the runtime after flags are parsed.
	NewApp func(flags *config.Flags) (*client.App, error)
	// RunInteractive runs the interactive UI.
	RunInteractive func(ctx context.Context, a *client.App) error
}

func (o *Options) defaults() {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.NewApp == nil {
		o.NewApp = client.NewApp
	}
	if o.RunInteractive == nil {
		o.RunInteractive = func(ctx context.Context, a *client.App) error { return a.Run(ctx) }
	}
}

// rootState is shared by every command of one tree.
type rootState struct {
	opts   Options
	flags  *config.Flags
	output string
	query  string
}

// NewRootCommand builds the complete command tree.
func NewRootCommand(opts Options) *cobra.Command {
	opts.defaults()
	st := &rootState{opts: opts}

	root := &cobra.Command{
		Use:   "arrkeeper",
		Short: "Manage Radarr, Sonarr, Lidarr, Readarr, Prowlarr and Whisparr from the terminal",
		Long: "arrkeeper without arguments opens the interactive UI.\n" +
			"arrkeeper <backend> <operation> [flags] runs one operation and prints the result.",
		Version:       opts.BuildInfo.String(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          st.runInteractive,
	}
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	pf := root.PersistentFlags()
	st.flags = config.BindFlags(pf)
	pf.StringVarP(&st.output, "output", "o", string(runner.FormatJSON), "one-shot output format: json or yaml")
	pf.StringVar(&st.query, "query", "", "JMESPath expression applied to the one-shot result")

	for _, kind := range models.AllBackendKinds() {
		root.AddCommand(st.backendCommand(kind))
	}
	root.AddCommand(st.checkCommand(), st.versionCommand())

	return root
}

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	root := NewRootCommand(opts)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return app.ExitOK
	}

	var code exitCode
	if errors.As(err, &code) {
		return int(code)
	}

	// Unknown commands, unknown or malformed flags, missing required flags.
	fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	return app.ExitValidation
}

func (st *rootState) runInteractive(cmd *cobra.Command, _ []string) error {
	a, err := st.opts.NewApp(st.flags)
	if err != nil {
		return fail(cmd.ErrOrStderr(), app.NewValidationError("", "config", err))
	}
	defer a.Close()

	if err = st.opts.RunInteractive(cmd.Context(), a); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return exitCode(app.ExitInternal)
	}
	return nil
}

// newRunner parses the output flags and builds the runtime for a one-shot
// command.
func (st *rootState) newRunner(cmd *cobra.Command) (*runner.Runner, *client.App, error) {
	format, err := runner.ParseFormat(st.output)
	if err != nil {
		return nil, nil, fail(cmd.ErrOrStderr(), app.NewValidationError("", "output", err))
	}

	a, err := st.opts.NewApp(st.flags)
	if err != nil {
		return nil, nil, fail(cmd.ErrOrStderr(), app.NewValidationError("", "config", err))
	}

	stderr := cmd.ErrOrStderr()
	r := runner.New(a.Executor(), cmd.OutOrStdout(), stderr, runner.Options{
		Output:  format,
		Query:   st.query,
		Spinner: !a.Config().UI.DisableSpinner && runner.IsTerminal(stderr),
	}, a.Logger())

	return r, a, nil
}

func (st *rootState) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that every configured backend is reachable and accepts its token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, a, err := st.newRunner(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			return codeErr(r.Check(cmd.Context(), a.Executor().Backends()))
		},
	}
}

func (st *rootState) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := st.opts.BuildInfo
			fmt.Fprintf(cmd.OutOrStdout(), "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(cmd.OutOrStdout(), "Build commit: %s\n", info.BuildCommit())
			return nil
		},
	}
}
