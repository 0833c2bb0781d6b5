package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"social-workflow-web/internal/domain"
)

// vocabulary: print the accepted option values.
func vocabularyCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "vocabulary",
		Short: "List accepted business types, goals and platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := domain.BuildVocabulary()
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			sections := []struct {
				title   string
				options []domain.Option
			}{
				{"business-type", v.BusinessTypes},
				{"goal", v.Goals},
				{"platform", v.Platforms},
			}
			for _, s := range sections {
				fmt.Fprintf(w, "--%s\n", s.title)
				for _, o := range s.options {
					fmt.Fprintf(w, "  %s\t%s\n", o.Value, o.Label)
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full table as JSON")
	return cmd
}
