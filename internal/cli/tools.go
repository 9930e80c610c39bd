package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nash-app/nash-mcp/tasktool"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools exposed to agent hosts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, tool := range tasktool.Tools() {
				fmt.Printf("%-18s %s\n", tool.Slug, tool.Description)
			}
		},
	}
}
