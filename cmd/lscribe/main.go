package main

import (
	"fmt"
	"os"

	"lecturescribe/cmd/lscribe/cmd"
	"lecturescribe/internal/config"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration warning: %v\n", err)
	}

	cmd.Execute()
}
