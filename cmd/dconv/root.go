package main

import (
	"context"
	"fmt"
	"io"

	"dconv/internal/core/convert"
	"dconv/internal/core/normalize"
	"dconv/internal/core/version"
	perr "dconv/internal/platform/errors"
	"dconv/internal/platform/logger"

	"github.com/spf13/cobra"
)

// newRootCmd builds the single dconv command around conv
func newRootCmd(conv *convert.Converter, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dconv <date> [operation]",
		Short: "Convert a date and print it as RFC3339 UTC, RFC3339 local and epoch millis",
		Long: `dconv - date conversion

<date> is one of:
  now                        the current instant
  1750796280                 epoch seconds (10 digits)
  1750796280000              epoch milliseconds (13 digits)
  1750796280000000           epoch microseconds (16 digits)
  1750796280000000000        epoch nanoseconds (19 digits)
  2025-06-24T20:18:00Z       RFC3339, any offset, optional fractional seconds

[operation] is <+|-><integer><s|m|h|d>, e.g. +2d, -3h, +45m, +10s`,
		Example: `  dconv now
  dconv 1750796280000 -3h
  dconv 2025-06-24T20:18:00+02:00 +2d`,
		Args:          dateArgs,
		Version:       version.Info().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var op string
			if len(args) == 2 {
				op = args[1]
			}

			log := logger.C(cmd.Context())
			res, err := conv.Convert(args[0], op)
			if err != nil {
				log.Debug().Str("date", args[0]).Str("operation", op).Stringer("code", perr.CodeOf(err)).Msg("conversion failed")
				return err
			}

			ev := log.Debug().Stringer("kind", res.Input.Kind)
			if p := res.Input.Precision.String(); p != "" {
				ev = ev.Str("precision", p)
			}
			if res.Operation != nil {
				ev = ev.Stringer("operation", res.Operation)
			}
			ev.Msg("converted")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.String())
			return err
		},
	}

	// everything after <date> is positional, so "-3h" reaches Args instead of the flag parser
	cmd.Flags().SetInterspersed(false)
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("dconv {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return perr.Wrap(err, perr.ErrorCodeUsage, "invalid flag")
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// dateArgs accepts <date> and an optional [operation]
func dateArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 1, 2:
		return nil
	case 0:
		return perr.Usagef("missing <date> argument")
	default:
		return perr.Usagef("accepts at most 2 arguments, received %d", len(args))
	}
}

// run executes the command with args and returns the process exit status
func run(ctx context.Context, conv *convert.Converter, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(conv, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	// errors from cobra itself (unknown flags and the like) count as usage errors
	if _, ok := perr.As(err); !ok {
		err = perr.Wrap(err, perr.ErrorCodeUsage, "invalid usage")
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	if perr.IsCode(err, perr.ErrorCodeUsage) {
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
	} else {
		hint(stderr, cmd.Flags().Args())
	}
	return perr.ExitCode(err)
}

// hint points at arguments that carry invisible or full-width characters
func hint(w io.Writer, args []string) {
	for _, a := range args {
		if clean, ok := normalize.Suggest(a); ok {
			fmt.Fprintf(w, "Hint: %q contains hidden or full-width characters, did you mean %q?\n", a, clean)
		}
	}
}
