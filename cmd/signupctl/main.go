package main

import (
	"os"

	"social-workflow-web/cmd/signupctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
