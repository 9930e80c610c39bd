package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a web page as readable plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, closeLog, err := buildRuntime()
			if err != nil {
				return err
			}
			defer closeLog()
			fmt.Println(rt.FetchReport(cmd.Context(), args[0]))
			return nil
		},
	}
}
