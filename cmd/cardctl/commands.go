package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mamadbah2/shoecard/internal/render/card"
	"github.com/mamadbah2/shoecard/internal/render/terminal"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Draw cards in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		shoes, err := loadShoes(cmd)
		if err != nil {
			return err
		}
		c, err := classifier()
		if err != nil {
			return err
		}
		for _, shoe := range shoes {
			fmt.Fprintln(cmd.OutOrStdout(), terminal.Render(card.Render(shoe, c.Variant(shoe))))
		}
		return nil
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Print each shoe's display variant",
	RunE: func(cmd *cobra.Command, args []string) error {
		shoes, err := loadShoes(cmd)
		if err != nil {
			return err
		}
		c, err := classifier()
		if err != nil {
			return err
		}
		for _, shoe := range shoes {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", shoe.Slug, c.Variant(shoe))
		}
		return nil
	},
}

var htmlCmd = &cobra.Command{
	Use:   "html",
	Short: "Write card HTML fragments to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		shoes, err := loadShoes(cmd)
		if err != nil {
			return err
		}
		c, err := classifier()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, shoe := range shoes {
			if err := card.WriteHTML(out, card.Render(shoe, c.Variant(shoe))); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}
