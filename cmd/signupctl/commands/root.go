package commands

import (
	"social-workflow-web/config"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the signupctl command tree. Flag defaults come from the
// same environment and .env file the server reads.
func NewRootCmd() *cobra.Command {
	cfg, _ := config.LoadConfig()

	root := &cobra.Command{
		Use:          "signupctl",
		Short:        "Send growth guide signups from the command line",
		SilenceUsage: true,
	}

	root.AddCommand(submitCmd(cfg), vocabularyCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
