// Command catalogctl browses the wholesale catalog and builds order exports
// from the terminal.
//
//	catalogctl catalog --filter nórdica
//	catalogctl view --qty 1=10 --qty 5=5
//	catalogctl export csv --qty 1=10 --out ./exports
//	catalogctl export whatsapp --qty 1=10 --phone 59800000000
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/guttosm/catalog-service/config"
	"github.com/guttosm/catalog-service/internal/catalog"
	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/guttosm/catalog-service/internal/export"
	"github.com/guttosm/catalog-service/internal/order"
	"github.com/guttosm/catalog-service/internal/pricing"
)

// errInvalidQty is returned for --qty values not shaped like id=quantity.
var errInvalidQty = errors.New("invalid --qty value")

// cli holds the flags shared by every command.
type cli struct {
	cfg         config.Config
	catalogFile string
	now         func() time.Time
}

// orderFlags are the flags of commands that build an order.
type orderFlags struct {
	quantities []string
	filter     string
}

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	c := &cli{cfg: cfg, now: time.Now}

	root := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Browse the wholesale catalog and export orders",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.catalogFile, "catalog", cfg.Catalog.File, "JSON catalog file (default: built-in catalog)")

	root.AddCommand(c.catalogCmd(), c.viewCmd(), c.exportCmd())
	return root
}

func (c *cli) catalogCmd() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := catalog.Load(c.catalogFile)
			if err != nil {
				return err
			}
			return printProducts(cmd.OutOrStdout(), cat.Search(filter))
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", "Keep products whose name, SKU or collection contains this text")
	return cmd
}

func (c *cli) viewCmd() *cobra.Command {
	var flags orderFlags
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show order lines and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.buildOrder(flags.quantities)
			if err != nil {
				return err
			}
			return c.printView(cmd.OutOrStdout(), session.View(flags.filter))
		},
	}
	addOrderFlags(cmd, &flags)
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an order as CSV or a WhatsApp message",
	}

	var csvFlags orderFlags
	var outDir string
	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Write the order as pedido_YYYY-MM-DD.csv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.buildOrder(csvFlags.quantities)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var sink export.Sink = export.WriterSink{Out: out}
			if outDir != "" {
				sink = export.NewFileSink(outDir, out)
			}

			result, err := c.exporter(c.cfg.Catalog.WhatsAppPhone).CSV(cmd.Context(), sink, session.View(csvFlags.filter))
			if err != nil {
				return err
			}
			if outDir != "" {
				fmt.Fprintf(out, "Wrote %d rows to %s\n", result.Rows, filepath.Join(outDir, result.FileName))
			}
			return nil
		},
	}
	addOrderFlags(csvCmd, &csvFlags)
	csvCmd.Flags().StringVar(&outDir, "out", "", "Directory to write the CSV file to (default: print to stdout)")

	var msgFlags orderFlags
	var phone string
	whatsappCmd := &cobra.Command{
		Use:   "whatsapp",
		Short: "Print the order message and its WhatsApp link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.buildOrder(msgFlags.quantities)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			exporter := c.exporter(phone)
			view := session.View(msgFlags.filter)

			fmt.Fprintln(out, export.ToOrderMessage(view.Lines, view.Totals))
			fmt.Fprintln(out)
			_, err = exporter.Message(cmd.Context(), export.WriterSink{Out: out}, view)
			return err
		},
	}
	addOrderFlags(whatsappCmd, &msgFlags)
	whatsappCmd.Flags().StringVar(&phone, "phone", c.cfg.Catalog.WhatsAppPhone, "WhatsApp number to send the order to")

	cmd.AddCommand(csvCmd, whatsappCmd)
	return cmd
}

func addOrderFlags(cmd *cobra.Command, flags *orderFlags) {
	cmd.Flags().StringArrayVar(&flags.quantities, "qty", nil, "Quantity as productID=value (may be repeated)")
	cmd.Flags().StringVar(&flags.filter, "filter", "", "Only include products matching this text")
}

func (c *cli) exporter(phone string) *export.Exporter {
	return export.NewExporter(export.WithPhone(phone), export.WithClock(c.now))
}

// buildOrder loads the catalog and applies the --qty values in order.
func (c *cli) buildOrder(quantities []string) (*order.Session, error) {
	cat, err := catalog.Load(c.catalogFile)
	if err != nil {
		return nil, err
	}

	session := order.NewSession("cli", cat)
	for _, q := range quantities {
		id, raw, ok := strings.Cut(q, "=")
		if !ok || strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w %q: want productID=quantity", errInvalidQty, q)
		}
		if _, err := session.SetQuantity(strings.TrimSpace(id), raw); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func printProducts(w io.Writer, products []model.Product) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSKU\tNAME\tCOLLECTION\tFINISH\tWHOLESALE\tRETAIL\tMARGIN")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.SKU, p.Name, p.Collection, p.Finish,
			pricing.FormatPrice(p.WholesalePrice),
			pricing.FormatPrice(p.SuggestedRetailPrice),
			pricing.FormatPercent(p.GrossMarginPct()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d products\n", len(products))
	return err
}

func (c *cli) printView(w io.Writer, view model.OrderView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tCBM\tKG\tCOST\tMARGIN")
	for _, l := range view.Lines {
		margin := "-"
		if l.Quantity > 0 {
			margin = pricing.FormatPercent(l.GrossMarginPct)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%.1f\t%s\t%s\n",
			l.ID, l.Name, l.Quantity,
			pricing.FormatVolume(l.TotalVolume), l.TotalWeight,
			pricing.FormatPrice(l.TotalCost), margin)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	t := view.Totals
	conditions := model.PurchaseConditions{
		MinimumPurchase: c.cfg.Catalog.MinimumPurchase,
		MinimumQuantity: order.MinimumQuantity,
	}
	status := "met"
	if !conditions.Met(t) {
		status = "not met"
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Items:            %d (%d products)\n", t.TotalItems, t.DistinctProducts)
	fmt.Fprintf(w, "Volume:           %s CBM\n", pricing.FormatVolume(t.TotalVolume))
	fmt.Fprintf(w, "Weight:           %.1f kg\n", t.TotalWeight)
	fmt.Fprintf(w, "Total cost:       %s\n", pricing.FormatPrice(t.TotalCost))
	fmt.Fprintf(w, "Retail value:     %s\n", pricing.FormatPrice(t.TotalRetailValue))
	fmt.Fprintf(w, "Estimated profit: %s\n", pricing.FormatPrice(t.EstimatedProfit))
	fmt.Fprintf(w, "Average margin:   %s (%s)\n", pricing.FormatPercent(t.AverageGrossMarginPct), t.MarginTier)
	_, err := fmt.Fprintf(w, "Minimum purchase: %s (%s)\n", pricing.FormatPrice(conditions.MinimumPurchase), status)
	return err
}
