package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yungbote/degreeplan-backend/internal/modules/planning"
)

func generateCmd() *cobra.Command {
	var (
		req         planning.Request
		timeout     time.Duration
		diagnostics bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run the plan pipeline once and print the plan JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), true)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			res, err := a.Services.Pipeline.Generate(ctx, req)
			if err != nil {
				if code := planning.CodeOf(err); code != "" {
					return fmt.Errorf("%s: %w", code, err)
				}
				return err
			}

			var payload any = res.Plan
			if diagnostics {
				payload = map[string]any{
					"plan":               res.Plan,
					"prefixes":           res.Prefixes,
					"curated_courses":    res.CuratedCount,
					"prompt_fingerprint": res.PromptFingerprint,
					"validation":         res.Report,
				}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		},
	}
	cmd.Flags().StringVar(&req.InstitutionID, "institution", "", "institution slug or id")
	cmd.Flags().StringVar(&req.ProgramTitle, "program", "", "program title")
	cmd.Flags().StringVar(&req.CredentialCode, "credential", "", "credential code, e.g. BS")
	cmd.Flags().StringSliceVar(&req.Skills, "skill", nil, "prioritized skill (repeatable)")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "overall deadline, 0 for none")
	cmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "wrap the plan with validation diagnostics")
	_ = cmd.MarkFlagRequired("institution")
	_ = cmd.MarkFlagRequired("program")
	_ = cmd.MarkFlagRequired("credential")
	return cmd
}
