package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newExecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec",
		Short: "Run ad-hoc shell or Python code",
	}

	cmd.AddCommand(newExecCommandCmd())
	cmd.AddCommand(newExecPythonCmd())
	cmd.AddCommand(newExecPackagesCmd())

	return cmd
}

func newExecCommandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "command <command line>",
		Short: "Run one shell command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, closeLog, err := buildRuntime()
			if err != nil {
				return err
			}
			defer closeLog()
			ctx, cancel := execContext(cmd.Context())
			defer cancel()
			fmt.Println(rt.CommandReport(ctx, strings.Join(args, " ")))
			return nil
		},
	}
}

func newExecPythonCmd() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "python [code]",
		Short: "Execute Python source text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := resolveCode(args, fromFile)
			if err != nil {
				return err
			}

			rt, closeLog, err := buildRuntime()
			if err != nil {
				return err
			}
			defer closeLog()
			ctx, cancel := execContext(cmd.Context())
			defer cancel()
			fmt.Println(rt.PythonReport(ctx, code))
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "read code from a file ('-' for stdin)")

	return cmd
}

func newExecPackagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List the Python interpreter version and installed packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, closeLog, err := buildRuntime()
			if err != nil {
				return err
			}
			defer closeLog()
			fmt.Println(rt.PackagesReport(cmd.Context()))
			return nil
		},
	}
}

func resolveCode(args []string, fromFile string) (string, error) {
	switch {
	case fromFile == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case fromFile != "":
		data, err := os.ReadFile(fromFile)
		if err != nil {
			return "", fmt.Errorf("read code file: %w", err)
		}
		return string(data), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("provide code as an argument or via --file")
	}
}
