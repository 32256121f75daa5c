package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get {text|principle} <id>",
		Short:     "Fetch one record by ID and print it as JSON",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"text", "principle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := newCatalog()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var record interface{}
			switch args[0] {
			case "text":
				text, err := cat.CulturalText(ctx, args[1])
				if err != nil {
					return err
				}
				if text == nil {
					fmt.Println("not found")
					return nil
				}
				record = text
			case "principle":
				principle, err := cat.Principle(ctx, args[1])
				if err != nil {
					return err
				}
				if principle == nil {
					fmt.Println("not found")
					return nil
				}
				record = principle
			default:
				return fmt.Errorf("unknown kind %q", args[0])
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(record)
		},
	}
}
