package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func resolveCmd() *cobra.Command {
	var institution, program string
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the course prefixes a program resolves to",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), false)
			if err != nil {
				return err
			}
			inst, err := a.Services.Catalog.Institution(cmd.Context(), institution)
			if err != nil {
				return err
			}
			prefixes, err := a.Services.Resolver.Resolve(cmd.Context(), inst.Slug, program)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", strings.Join(prefixes, " "))
			return nil
		},
	}
	cmd.Flags().StringVar(&institution, "institution", "", "institution slug or id")
	cmd.Flags().StringVar(&program, "program", "", "program title")
	_ = cmd.MarkFlagRequired("institution")
	_ = cmd.MarkFlagRequired("program")
	return cmd
}
