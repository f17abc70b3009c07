package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/geoquiz/internal/api/response"
	"github.com/mcoot/geoquiz/internal/model"
	"github.com/mcoot/geoquiz/internal/services/resolver"
	"github.com/mcoot/geoquiz/internal/services/suggest"
)

func parseEntityID(arg string) (model.EntityID, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid entity id %q", arg)
	}
	return model.EntityID(n), nil
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <entity-id> <answer...>",
		Short: "Check whether an answer names an entity",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := cfg.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			id, err := parseEntityID(args[0])
			if err != nil {
				return err
			}
			res := resolver.New(cat)
			if !res.Knows(id) {
				return fmt.Errorf("%w: %d", model.ErrEntityNotFound, id)
			}

			answer := strings.Join(args[1:], " ")
			matched, alias := res.Match(id, answer)

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(CheckResult{
				EntityID: int(id),
				Name:     cat.DisplayName(id),
				Answer:   answer,
				Correct:  matched,
				Alias:    alias,
			})
			return nil
		},
	}
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the local catalog",
	}

	cmd.AddCommand(newCatalogListCmd())
	cmd.AddCommand(newCatalogRegionsCmd())
	cmd.AddCommand(newCatalogShowCmd())
	cmd.AddCommand(newCatalogMapCmd())

	return cmd
}

func newCatalogListCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entities sorted by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := cfg.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			var out response.Catalog
			for _, e := range cat.Entities() {
				if region != "" && !strings.EqualFold(e.Region, region) {
					continue
				}
				out.Entities = append(out.Entities, response.EntityFromCatalog(e, cat))
			}
			out.Count = len(out.Entities)

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", "", "Only list entities of this region")

	return cmd
}

func newCatalogRegionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List regions and subregions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := cfg.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(response.Regions{Regions: cat.Regions()})
			return nil
		},
	}
}

func newCatalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <entity-id>",
		Short: "Show an entity and its accepted answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := cfg.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			id, err := parseEntityID(args[0])
			if err != nil {
				return err
			}
			e, ok := cat.Entity(id)
			if !ok {
				return fmt.Errorf("%w: %d", model.ErrEntityNotFound, id)
			}

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(response.EntityFromCatalog(e, cat))
			return nil
		},
	}
}

func newCatalogMapCmd() *cobra.Command {
	var features []int

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Show which entities are drawn as polygons and which as markers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := cfg.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			ids := cat.IDs()
			if cmd.Flags().Changed("features") {
				ids = make([]model.EntityID, len(features))
				for i, f := range features {
					ids[i] = model.EntityID(f)
				}
			}

			layers := response.MapLayersFromModel(cat.Quizzable(ids), cat.Markers(), cat.DisplayName)
			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(layers)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&features, "features", nil, "Geometry feature ids available on the map (default: every entity)")

	return cmd
}

func newSuggestCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "suggest <query...>",
		Short: "Suggest entity names for a partial answer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := cfg.LoadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			suggestions := suggest.New(cat).Suggest(query, nil, limit)

			NewOutput(cmd.OutOrStdout(), cfg.Output).Print(response.SuggestionsFromModel(query, suggestions))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", suggest.DefaultLimit, "Maximum number of suggestions")

	return cmd
}
