package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/autonomous-futures/catalog/internal/catalog"
)

func newListCmd() *cobra.Command {
	var (
		genre   string
		medium  string
		country string
		limit   int
	)

	cmd := &cobra.Command{
		Use:       "list {texts|principles|recommendations|profiles|technology}",
		Short:     "List records of one kind",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"texts", "principles", "recommendations", "profiles", "technology"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := newCatalog()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			switch args[0] {
			case "texts":
				texts, err := cat.CulturalTextsWithAuthors(ctx, catalog.TextFilters{
					Genre:      genre,
					Medium:     medium,
					Country:    country,
					MaxRecords: limit,
				})
				if err != nil {
					return err
				}
				for _, t := range texts {
					fmt.Printf("%s  %-40s  %s\n", t.ID, t.Title, t.Author)
				}
				fmt.Printf("%d cultural texts\n", len(texts))
			case "principles":
				principles, err := cat.Principles(ctx)
				if err != nil {
					return err
				}
				for _, p := range principles {
					marker := " "
					if p.IsOverarching {
						marker = "*"
					}
					fmt.Printf("%s %s  %-40s  %s\n", marker, p.ID, p.Title, p.Theme)
				}
				fmt.Printf("%d principles (* = overarching)\n", len(principles))
			case "recommendations":
				recs, err := cat.DesignRecommendations(ctx, "")
				if err != nil {
					return err
				}
				for _, r := range recs {
					fmt.Printf("%s  %s\n", r.ID, r.Title)
				}
				fmt.Printf("%d design recommendations\n", len(recs))
			case "profiles":
				profiles, err := cat.Profiles(ctx)
				if err != nil {
					return err
				}
				for _, p := range profiles {
					fmt.Printf("%s  %s\n", p.ID, p.Name)
				}
				fmt.Printf("%d profiles\n", len(profiles))
			case "technology":
				items, err := cat.TechnologyTaxonomy(ctx)
				if err != nil {
					return err
				}
				for _, item := range items {
					fmt.Printf("%s  %-30s  %s\n", item.ID, item.Name, item.Category)
				}
				fmt.Printf("%d taxonomy entries\n", len(items))
			default:
				return fmt.Errorf("unknown kind %q", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Filter texts by genre")
	cmd.Flags().StringVar(&medium, "medium", "", "Filter texts by medium")
	cmd.Flags().StringVar(&country, "country", "", "Filter texts by country")
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum records to fetch")

	return cmd
}
