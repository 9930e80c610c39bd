package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nash-app/nash-mcp/spec"
)

func newRunCmd() *cobra.Command {
	var rawArgs string

	cmd := &cobra.Command{
		Use:   "run <task> <script>",
		Short: "Execute a named script from a saved task",
		Long:  "Runs one script from a saved task. Python scripts receive --args through the task_args list; command scripts get them appended to the command line.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var scriptArgs []any
			if rawArgs != "" {
				if err := json.Unmarshal([]byte(rawArgs), &scriptArgs); err != nil {
					return fmt.Errorf("parse --args as JSON array: %w", err)
				}
			}

			rt, closeLog, err := buildRuntime()
			if err != nil {
				return err
			}
			defer closeLog()
			ctx, cancel := execContext(cmd.Context())
			defer cancel()
			fmt.Println(rt.ExecuteScriptReport(ctx, spec.ExecuteScriptArgs{
				Task:   args[0],
				Script: args[1],
				Args:   scriptArgs,
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", "", "script arguments as a JSON array, e.g. '[\"a\", 2]'")

	return cmd
}
