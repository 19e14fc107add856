package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	listSvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
)

func newListCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Manage the shopping list of --shopper",
		Long: `Manage a shopping list. The default memory store lasts for one command;
use --list-store redis or postgres to keep lists between runs.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.showList(cmd)
		},
	}

	var confirm bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.services(cmd.Context()); err != nil {
				return err
			}
			view, err := c.lists.List.Clear(cmd.Context(), c.shopper, confirm)
			if err != nil {
				return fmt.Errorf("%w (pass --yes)", err)
			}
			return c.printList(cmd.OutOrStdout(), view)
		},
	}
	clearCmd.Flags().BoolVarP(&confirm, "yes", "y", false, "confirm clearing the list")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <item>",
			Short: "Add an entry",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := c.services(cmd.Context()); err != nil {
					return err
				}
				if _, err := c.lists.List.Add(cmd.Context(), c.shopper, strings.Join(args, " ")); err != nil {
					return err
				}
				return c.showList(cmd)
			},
		},
		&cobra.Command{
			Use:   "toggle <id>",
			Short: "Check or uncheck an entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid entry id %q", args[0])
				}
				if err := c.services(cmd.Context()); err != nil {
					return err
				}
				if _, err := c.lists.List.Toggle(cmd.Context(), c.shopper, id); err != nil {
					return err
				}
				return c.showList(cmd)
			},
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove an entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid entry id %q", args[0])
				}
				if err := c.services(cmd.Context()); err != nil {
					return err
				}
				if err := c.lists.List.Remove(cmd.Context(), c.shopper, id); err != nil {
					return err
				}
				return c.showList(cmd)
			},
		},
		clearCmd,
	)
	return cmd
}

func (c *cli) showList(cmd *cobra.Command) error {
	if err := c.services(cmd.Context()); err != nil {
		return err
	}
	view, err := c.lists.List.Get(cmd.Context(), c.shopper)
	if err != nil {
		return err
	}
	return c.printList(cmd.OutOrStdout(), view)
}

func (c *cli) printList(w io.Writer, view listSvcs.ListView) error {
	if c.asJSON {
		return writeJSON(w, view)
	}
	if view.Message != "" {
		fmt.Fprintln(w, view.Message)
		return nil
	}
	for _, e := range view.Entries {
		mark := " "
		if e.Checked {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %d  %s\n", mark, e.ID, e.Name)
	}
	fmt.Fprintf(w, "%d items, %d checked\n", view.Count, view.CheckedCount)
	return nil
}
