package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSecretsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "secrets",
		Short: "List available secret keys and descriptions (never values)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, closeLog, err := buildRuntime()
			if err != nil {
				return err
			}
			defer closeLog()
			fmt.Println(rt.SecretsReport(cmd.Context()))
			return nil
		},
	}
}
