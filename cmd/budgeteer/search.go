package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	catalogSvcs "github.com/ghuser/budgeteer/services/catalog/application/services"
	catalogmodels "github.com/ghuser/budgeteer/services/catalog/domain/models"
)

func newSearchCmd(c *cli) *cobra.Command {
	var p catalogSvcs.SearchParams
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog for current prices",
		Example: `  budgeteer search milk
  budgeteer search --store Costco --max-price 5 --sort price-asc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Query = strings.Join(args, " ")
			q, err := catalogSvcs.ParseQuery(p)
			if err != nil {
				return err
			}
			if err := c.services(cmd.Context()); err != nil {
				return err
			}
			view := c.catalog.Search.Search(cmd.Context(), q)
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			return printView(cmd.OutOrStdout(), view)
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.Store, "store", "", "only this store")
	f.StringVar(&p.Category, "category", "", "only this category tag")
	f.StringVar(&p.MinPrice, "min-price", "", "inclusive lower price bound")
	f.StringVar(&p.MaxPrice, "max-price", "", "inclusive upper price bound")
	f.StringVar(&p.Sort, "sort", "", "price-asc, price-desc or name")
	f.StringVar(&p.EmptyMessage, "empty-message", "", "headline when nothing matches")
	return cmd
}

// printView renders a result view as an aligned table.
func printView(w io.Writer, view catalogmodels.ResultView) error {
	fmt.Fprintln(w, view.Title)
	if view.Message != "" {
		fmt.Fprintln(w, view.Message)
	}
	if len(view.Results) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tITEM\tSTORE\tPRICE\tDATE")
	for _, r := range view.Results {
		fmt.Fprintf(tw, "%d\t%s\t%s\t$%s\t%s\n", r.ItemID, r.ItemName, r.Store, r.CurrentPrice.StringFixed(2), r.PriceDate)
	}
	return tw.Flush()
}
