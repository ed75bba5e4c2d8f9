package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/config"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// StoreCommandHandler prices carts with the configured tax and shipping rules
type StoreCommandHandler struct {
	logger logger.Logger
}

// NewStoreCommandHandler initializes and returns a StoreCommandHandler instance
func NewStoreCommandHandler() (*StoreCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &StoreCommandHandler{
		logger: loggerInstance,
	}, nil
}

// parseCartItems turns "product:qty" pairs into cart items. The quantity defaults to 1.
func parseCartItems(specs []string) ([]store.CartItem, error) {
	items := make([]store.CartItem, 0, len(specs))
	for _, spec := range specs {
		id, qty, found := strings.Cut(spec, ":")
		quantity := 1
		if found {
			n, err := strconv.Atoi(qty)
			if err != nil {
				return nil, fmt.Errorf("invalid quantity in %q: %w", spec, err)
			}
			quantity = n
		}
		items = append(items, store.CartItem{ProductID: strings.TrimSpace(id), Quantity: quantity})
	}
	return items, nil
}

func pricingFrom(settings *config.StoreSettings) store.Pricing {
	return store.Pricing{
		TaxRate:                    settings.TaxRate,
		ShippingCents:              settings.ShippingCents,
		FreeShippingThresholdCents: settings.FreeShippingThresholdCents,
	}
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// ListProductsCmd prints the catalog
func (commandHandler *StoreCommandHandler) ListProductsCmd(_ *cobra.Command, _ []string) {
	for _, p := range store.Products() {
		fmt.Printf("%-16s %10s  %s\n", p.ID, formatCents(p.PriceCents), p.Name)
	}
}

// QuoteCmd prices a cart given as --item product:qty flags
func (commandHandler *StoreCommandHandler) QuoteCmd(cmd *cobra.Command, _ []string) {
	specs, err := cmd.Flags().GetStringSlice("item")
	if err != nil {
		commandHandler.logger.Error("invalid item flag ", err)
		return
	}

	items, err := parseCartItems(specs)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	quote, err := pricingFrom(&cfg.Store).Price(items)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, line := range quote.Lines {
		fmt.Printf("%-16s x%-3d %10s\n", line.ProductID, line.Quantity, formatCents(line.TotalCents))
	}
	fmt.Printf("subtotal %s  tax %s  shipping %s  total %s\n",
		formatCents(quote.SubtotalCents), formatCents(quote.TaxCents), formatCents(quote.ShippingCents), formatCents(quote.TotalCents))
}

// InitStoreCommands registers the store commands
func InitStoreCommands(rootCmd *cobra.Command) error {
	handler, err := NewStoreCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create store command handler %w", err)
	}

	var productsCmd = &cobra.Command{
		Use:   "list-products",
		Short: "List the store catalog",
		Run:   handler.ListProductsCmd,
	}
	rootCmd.AddCommand(productsCmd)

	var quoteCmd = &cobra.Command{
		Use:   "quote-cart",
		Short: "Price a cart including tax and shipping",
		Run:   handler.QuoteCmd,
	}
	quoteCmd.Flags().StringSliceP("item", "", nil, "Cart line as product:qty, repeatable")
	rootCmd.AddCommand(quoteCmd)

	return nil
}
