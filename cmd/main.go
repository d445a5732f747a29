package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const envPath = ".env"

func main() {
	root := &cobra.Command{
		Use:           "mkauth-api",
		Short:         "MK-Auth billing API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd())

	err := root.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
