package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	domainsvcs "github.com/ghuser/budgeteer/services/shoppinglist/domain/services"
)

func newCompareCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [item...]",
		Short: "Compare a shopping list across stores",
		Long: `Compare prices the named items at every store. Without arguments the
saved list of --shopper is compared.`,
		Example: `  budgeteer compare milk bread eggs`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.services(ctx); err != nil {
				return err
			}
			var (
				cmp *domainsvcs.Comparison
				err error
			)
			if len(args) > 0 {
				cmp, err = c.lists.Compare.CompareNames(ctx, args)
			} else {
				cmp, err = c.lists.Compare.Compare(ctx, c.shopper)
			}
			if err != nil {
				return err
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), cmp)
			}
			return printComparison(cmd.OutOrStdout(), cmp)
		},
	}
}

func printComparison(w io.Writer, cmp *domainsvcs.Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprint(tw, "ITEM")
	for _, s := range cmp.Stores {
		fmt.Fprintf(tw, "\t%s", s)
	}
	fmt.Fprintln(tw)

	for _, row := range cmp.Rows {
		fmt.Fprint(tw, row.Entry)
		for _, cell := range row.Cells {
			if cell.Available {
				fmt.Fprintf(tw, "\t$%s", cell.Price.StringFixed(2))
			} else {
				fmt.Fprint(tw, "\t-")
			}
		}
		if row.Message != "" {
			fmt.Fprintf(tw, "\t%s", row.Message)
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprint(tw, "TOTAL")
	for _, t := range cmp.Totals {
		fmt.Fprintf(tw, "\t$%s", t.Total.StringFixed(2))
	}
	fmt.Fprintln(tw)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Best: %s at $%s (save $%s)\n", cmp.BestStore, cmp.BestTotal.StringFixed(2), cmp.Savings.StringFixed(2))
	return nil
}
