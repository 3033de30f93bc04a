package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"shopgrid/internal/domain"
	"shopgrid/internal/filter"
	"shopgrid/internal/ui/views"
)

// listOptions are the filter criteria of the list command
type listOptions struct {
	search   string
	category string
	sort     string
}

var listOpts listOptions

// listCmd prints the filtered listing without starting the UI
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the product listing for the given filters",
	Long: `Prints the products that match the filters, in listing order.

Examples:
  shopgrid list --search shirt
  shopgrid list --category Shoes --sort low`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return printListing(cmd.OutOrStdout(), cat.Products(), listOpts, cfg.UISettings.CurrencySymbol)
	},
}

// categoriesCmd prints the category options
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the category options of the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := openCatalog()
		if err != nil {
			return err
		}
		return printCategories(cmd.OutOrStdout(), cat.Products())
	},
}

func init() {
	listCmd.Flags().StringVarP(&listOpts.search, "search", "s", "", "Only products whose name contains this text")
	listCmd.Flags().StringVarP(&listOpts.category, "category", "c", filter.All, "Only products in this category")
	listCmd.Flags().StringVar(&listOpts.sort, "sort", "all", "Price order: all, high or low")
}

// listState builds the filter state for opts through the store, as the UI does
func listState(products []domain.Product, opts listOptions) filter.State {
	store := filter.NewStore(products)
	store.Dispatch(filter.SetSearchTerm{Value: opts.search})
	if opts.category != "" {
		store.Dispatch(filter.SetCategory{Value: opts.category})
	}
	store.Dispatch(filter.SetPriceSort{Value: filter.ParsePriceSort(opts.sort)})
	return store.State()
}

// printListing writes the projected listing as a table
func printListing(w io.Writer, products []domain.Product, opts listOptions, currencySymbol string) error {
	listing := filter.Project(products, listState(products, opts))
	if len(listing) == 0 {
		_, err := fmt.Fprintln(w, "No products match the given filters.")
		return err
	}

	price := views.NewPriceFormatter(currencySymbol)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "CATEGORY", "PRICE")
	for _, p := range listing {
		t.Row(p.ID, p.Name, p.Category, price.Format(p.Price))
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d products\n", len(listing), len(products))
	return err
}

// printCategories writes one category option per line
func printCategories(w io.Writer, products []domain.Product) error {
	for _, c := range filter.CategoryOptions(products) {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}
