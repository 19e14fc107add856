package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newAssistCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Ask Budgie, the shopping assistant",
	}

	search := &cobra.Command{
		Use:   "search <question>",
		Short: "Ask a question and see matching catalog prices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.services(cmd.Context()); err != nil {
				return err
			}
			view, err := c.assist.Assist.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), view)
			}
			return printView(cmd.OutOrStdout(), view)
		},
	}

	var (
		budget string
		save   bool
	)
	plan := &cobra.Command{
		Use:     "plan <prompt>",
		Short:   "Draft a shopping list within an optional budget",
		Example: `  budgeteer ai plan "snacks for a party" --budget 20 --save`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var limit *decimal.Decimal
			if budget != "" {
				b, err := decimal.NewFromString(budget)
				if err != nil {
					return fmt.Errorf("invalid budget %q", budget)
				}
				limit = &b
			}
			if err := c.services(cmd.Context()); err != nil {
				return err
			}
			p, err := c.assist.Assist.GenerateList(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			added := 0
			if save {
				if added, err = c.assist.Assist.SaveList(cmd.Context(), c.shopper, p.Names()); err != nil {
					return err
				}
			}
			if c.asJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}

			w := cmd.OutOrStdout()
			for _, it := range p.Items {
				fmt.Fprintf(w, "%-32s %-10s $%s\n", it.ItemName, it.Store, it.CurrentPrice.StringFixed(2))
			}
			fmt.Fprintf(w, "Estimated total: $%s\n", p.Total.StringFixed(2))
			if save {
				fmt.Fprintf(w, "Added %d items to the list of %s\n", added, c.shopper)
			}
			return nil
		},
	}
	plan.Flags().StringVar(&budget, "budget", "", "spending limit, e.g. 25.00")
	plan.Flags().BoolVar(&save, "save", false, "add the drafted items to the shopping list")

	cmd.AddCommand(search, plan)
	return cmd
}
