package main

import (
	"os"

	"github.com/yungbote/degreeplan-backend/cmd/planctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
