package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search principles, cultural texts and design recommendations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := newCatalog()
			if err != nil {
				return err
			}

			results, err := cat.Search(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("No results.")
				return nil
			}

			for _, r := range results {
				fmt.Printf("[%s] %s  %s\n", r.Type, r.ID, r.Title)
			}
			fmt.Printf("%d results\n", len(results))
			return nil
		},
	}
}
