package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/folio-arcade/internal/catfact"
)

var flagFactEndpoint string

var factCmd = &cobra.Command{
	Use:   "fact",
	Short: "Print a cat fact",
	Long: `Fetch one cat fact and print it. When the service cannot be reached
the fixed fallback text is printed instead.`,
	Args: cobra.NoArgs,
	Run:  runFact,
}

func init() {
	factCmd.Flags().StringVar(&flagFactEndpoint, "endpoint", catfact.DefaultEndpoint, "Cat fact service URL")
}

func runFact(cmd *cobra.Command, _ []string) {
	logger, closer := newLogger("folio", false)
	defer closer.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	client := catfact.New(catfact.WithEndpoint(flagFactEndpoint), catfact.WithLogger(logger))
	fmt.Println(client.Fetch(ctx))
}
