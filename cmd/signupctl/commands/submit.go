package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"social-workflow-web/config"
	"social-workflow-web/internal/domain"
	"social-workflow-web/internal/usecase"
	"social-workflow-web/pkg/signupapi"
	"social-workflow-web/pkg/validation"
)

// submit: build a signup record from flags and send it once.
func submitCmd(cfg *config.Config) *cobra.Command {
	var (
		endpoint  string
		timeout   time.Duration
		dryRun    bool
		goals     []string
		platforms []string
		fields    = map[domain.FieldName]*string{}
	)

	flagNames := map[domain.FieldName]string{
		domain.FieldBusinessName:      "business-name",
		domain.FieldBusinessType:      "business-type",
		domain.FieldEmail:             "email",
		domain.FieldWebsite:           "website",
		domain.FieldTargetAudience:    "target-audience",
		domain.FieldCurrentChallenges: "challenges",
	}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate and submit a signup",
		Example: `  signupctl submit --business-name "Joe's Cafe" --business-type restaurant \
    --email joe@cafe.com --target-audience "young professionals" \
    --goal "Drive more sales" --platform Instagram --challenges "low engagement"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.NewSignupRequest()
			var err error

			for _, name := range domain.ValidFieldNames() {
				if !cmd.Flags().Changed(flagNames[name]) {
					continue
				}
				if req, err = req.UpdateField(name, *fields[name]); err != nil {
					return err
				}
			}
			for _, g := range goals {
				if req, err = req.ToggleSetMembership(domain.CategoryMainGoals, g, true); err != nil {
					return err
				}
			}
			for _, p := range platforms {
				if req, err = req.ToggleSetMembership(domain.CategorySocialPlatforms, p, true); err != nil {
					return err
				}
			}

			submitter := usecase.NewSignupSubmitter(signupapi.New(endpoint, timeout), validation.New())

			var result domain.SubmitResult
			if dryRun {
				result = domain.SubmitResult{Status: domain.SubmitSucceeded, Message: "Signup is valid."}
				if msgs := submitter.Validate(req); len(msgs) > 0 {
					result = domain.SubmitResult{Status: domain.SubmitInvalid, Message: "Signup is not valid.", FieldErrors: msgs}
				}
			} else {
				result = submitter.Submit(context.Background(), req)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(result); err != nil {
				return err
			}
			if !result.Succeeded() {
				return fmt.Errorf("signup %s: %s", result.Status, result.Message)
			}
			return nil
		},
	}

	for _, name := range domain.ValidFieldNames() {
		fields[name] = new(string)
	}
	cmd.Flags().StringVar(fields[domain.FieldBusinessName], flagNames[domain.FieldBusinessName], "", "business name")
	cmd.Flags().StringVar(fields[domain.FieldBusinessType], flagNames[domain.FieldBusinessType], string(domain.DefaultBusinessType), "retail, restaurant, fitness, salon, real_estate or other")
	cmd.Flags().StringVar(fields[domain.FieldEmail], flagNames[domain.FieldEmail], "", "business email")
	cmd.Flags().StringVar(fields[domain.FieldWebsite], flagNames[domain.FieldWebsite], "", "website (optional)")
	cmd.Flags().StringVar(fields[domain.FieldTargetAudience], flagNames[domain.FieldTargetAudience], "", "ideal customer")
	cmd.Flags().StringVar(fields[domain.FieldCurrentChallenges], flagNames[domain.FieldCurrentChallenges], "", "biggest social media challenges")
	cmd.Flags().StringArrayVar(&goals, "goal", nil, "business goal, repeatable (see 'signupctl vocabulary')")
	cmd.Flags().StringArrayVar(&platforms, "platform", nil, "social platform, repeatable")
	cmd.Flags().StringVar(&endpoint, "endpoint", cfg.SignupEndpointURL, "signup endpoint URL")
	cmd.Flags().DurationVar(&timeout, "timeout", cfg.SignupTimeout(), "request timeout")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate only, do not send")
	return cmd
}
