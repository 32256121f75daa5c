// Package main provides the entry point for the futurectl CLI, an
// operational tool for inspecting the catalog base from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/autonomous-futures/catalog/internal/airtable"
	"github.com/autonomous-futures/catalog/internal/catalog"
)

var version = "0.1.0-dev"

var (
	flagBaseID string
	flagToken  string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "futurectl",
		Short:   "Inspect the cultural-futures catalog base",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&flagBaseID, "base", "", "Base ID (defaults to AIRTABLE_BASE_ID)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "API token (defaults to AIRTABLE_API_TOKEN)")

	rootCmd.AddCommand(
		newListCmd(),
		newGetCmd(),
		newSearchCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}

// newCatalog builds a catalog over a live base from flags or environment.
func newCatalog() (*catalog.Catalog, error) {
	baseID := flagBaseID
	if baseID == "" {
		baseID = os.Getenv("AIRTABLE_BASE_ID")
	}
	token := flagToken
	if token == "" {
		token = os.Getenv("AIRTABLE_API_TOKEN")
	}

	store, err := airtable.NewClient(baseID, token)
	if err != nil {
		return nil, err
	}
	return catalog.New(store, zap.NewNop().Sugar()), nil
}
