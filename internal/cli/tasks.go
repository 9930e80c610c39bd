package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nash-app/nash-mcp/spec"
)

func newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage saved tasks",
	}

	cmd.AddCommand(newTasksListCmd())
	cmd.AddCommand(newTasksGetCmd())
	cmd.AddCommand(newTasksDetailsCmd())
	cmd.AddCommand(newTasksDeleteCmd())
	cmd.AddCommand(newTasksSaveCmd())

	return cmd
}

func newTasksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all saved tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, closeLog, err := buildRuntime()
			if err != nil {
				return err
			}
			defer closeLog()
			fmt.Println(rt.ListTasksReport(cmd.Context()))
			return nil
		},
	}
}

func newTasksGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show a task's prompt and script summaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, closeLog, err := buildRuntime()
			if err != nil {
				return err
			}
			defer closeLog()
			fmt.Println(rt.GetTaskReport(cmd.Context(), args[0]))
			return nil
		},
	}
}

func newTasksDetailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details <name>",
		Short: "Show a task including full script code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, closeLog, err := buildRuntime()
			if err != nil {
				return err
			}
			defer closeLog()
			fmt.Println(rt.TaskDetailsReport(cmd.Context(), args[0]))
			return nil
		},
	}
}

func newTasksDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, closeLog, err := buildRuntime()
			if err != nil {
				return err
			}
			defer closeLog()
			fmt.Println(rt.DeleteTaskReport(cmd.Context(), args[0]))
			return nil
		},
	}
}

func newTasksSaveCmd() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a task from a JSON document",
		Long:  "Reads a JSON object with name, prompt and optional scripts fields and saves it as a task, replacing any existing task with the same name.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readTaskDocument(fromFile)
			if err != nil {
				return err
			}
			var saveArgs spec.SaveTaskArgs
			if err := json.Unmarshal(data, &saveArgs); err != nil {
				return fmt.Errorf("parse task document: %w", err)
			}

			rt, closeLog, err := buildRuntime()
			if err != nil {
				return err
			}
			defer closeLog()
			fmt.Println(rt.SaveTaskReport(cmd.Context(), saveArgs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "-", "task JSON file ('-' for stdin)")

	return cmd
}

func readTaskDocument(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task document: %w", err)
	}
	return data, nil
}
