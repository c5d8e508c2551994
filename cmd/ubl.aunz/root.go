package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const name = "ubl.aunz"

type rootOpts struct {
	verbose bool
	log     *slog.Logger
}

func root() *rootOpts {
	return &rootOpts{}
}

func (o *rootOpts) cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         "Build and render A-NZ PEPPOL BIS Billing 3.0 invoices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			o.setupLogger(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "Log progress to stderr")

	cmd.AddCommand(versionCmd())
	cmd.AddCommand(schemaCmd())
	cmd.AddCommand(build(o).cmd())
	cmd.AddCommand(renderer(o).cmd())

	return cmd
}

func (o *rootOpts) setupLogger(w io.Writer) {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	o.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *rootOpts) logger() *slog.Logger {
	if o.log == nil {
		o.setupLogger(io.Discard)
	}
	return o.log
}

func (o *rootOpts) outputFilename(args []string) string {
	if len(args) >= 2 && args[1] != "-" {
		return args[1]
	}
	return ""
}

func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if inFile := inputFilename(args); inFile != "" {
		f, err := os.Open(inFile)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		return f, nil
	}
	return io.NopCloser(cmd.InOrStdin()), nil
}

func inputFilename(args []string) string {
	if len(args) > 0 && args[0] != "-" {
		return args[0]
	}
	return ""
}

func (o *rootOpts) openOutput(cmd *cobra.Command, args []string) (io.WriteCloser, error) {
	if outFile := o.outputFilename(args); outFile != "" {
		f, err := os.OpenFile(outFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.ModePerm)
		if err != nil {
			return nil, fmt.Errorf("opening output: %w", err)
		}
		return f, nil
	}
	return writeCloser{cmd.OutOrStdout()}, nil
}

type writeCloser struct {
	io.Writer
}

func (writeCloser) Close() error { return nil }
