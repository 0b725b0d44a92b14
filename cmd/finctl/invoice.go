package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/finanzas-api/internal/application/billing"
	"github.com/jhoicas/finanzas-api/internal/domain/entity"
	"github.com/jhoicas/finanzas-api/internal/domain/invoice"
	"github.com/jhoicas/finanzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/finanzas-api/pkg/config"
	"github.com/jhoicas/finanzas-api/pkg/money"
)

func newInvoiceCmd(load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Cálculos de factura",
	}
	cmd.AddCommand(newInvoiceTotalsCmd(), newInvoiceNumberCmd(), newInvoiceNextCmd(load))
	return cmd
}

// newInvoiceTotalsCmd calcula totales offline con las mismas reglas que la API.
func newInvoiceTotalsCmd() *cobra.Command {
	var (
		lines    []string
		tax      string
		discount string
		currency string
	)
	cmd := &cobra.Command{
		Use:     "totals",
		Short:   "Calcula subtotal, impuesto y total de un conjunto de líneas",
		Example: `  finctl invoice totals --line 2x10000 --line 1x5000 --tax 11 --discount 1000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft := &invoice.Draft{
				TaxRate:  money.Coerce(tax),
				Discount: money.Coerce(discount),
			}
			for _, raw := range lines {
				item, err := parseLineFlag(raw)
				if err != nil {
					return err
				}
				draft.Lines = append(draft.Lines, item)
			}
			totals := draft.Recalculate()

			f := money.Default
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			for _, l := range draft.Lines {
				fmt.Fprintf(w, "%d x %s\t%s\t\n", l.Quantity, f.FormatCurrency(l.UnitPrice, currency), f.FormatCurrency(l.Total, currency))
			}
			fmt.Fprintf(w, "Subtotal\t%s\t\n", f.FormatCurrency(totals.Subtotal, currency))
			fmt.Fprintf(w, "Impuesto\t%s\t\n", f.FormatCurrency(totals.Tax, currency))
			fmt.Fprintf(w, "Descuento\t%s\t\n", f.FormatCurrency(totals.Discount, currency))
			fmt.Fprintf(w, "Total\t%s\t\n", f.FormatCurrency(totals.Total, currency))
			return w.Flush()
		},
	}
	cmd.Flags().StringArrayVar(&lines, "line", nil, "línea CANTIDADxPRECIO (repetible)")
	cmd.Flags().StringVar(&tax, "tax", "0", "porcentaje de impuesto")
	cmd.Flags().StringVar(&discount, "discount", "0", "descuento fijo")
	cmd.Flags().StringVar(&currency, "currency", "IDR", "moneda de la factura")
	return cmd
}

// parseLineFlag interpreta "2x10000". Valores no numéricos cuentan como 0.
func parseLineFlag(raw string) (entity.InvoiceLineItem, error) {
	qty, price, ok := strings.Cut(strings.ToLower(raw), "x")
	if !ok {
		return entity.InvoiceLineItem{}, fmt.Errorf("línea %q: use CANTIDADxPRECIO", raw)
	}
	return entity.InvoiceLineItem{
		Quantity:  invoice.CoerceQuantity(money.Coerce(qty)),
		UnitPrice: money.Coerce(price),
	}, nil
}

// newInvoiceNumberCmd muestra el número que seguiría a --last.
func newInvoiceNumberCmd() *cobra.Command {
	var (
		last  string
		at    string
		reset bool
	)
	cmd := &cobra.Command{
		Use:     "number",
		Short:   "Calcula el siguiente número INV-YYMM-NNNN a partir del último",
		Example: `  finctl invoice number --last INV-2405-0007 --at 2024-06-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			if at != "" {
				t, err := time.Parse("2006-01-02", at)
				if err != nil {
					return fmt.Errorf("--at: use YYYY-MM-DD: %w", err)
				}
				now = t
			}
			fmt.Fprintln(cmd.OutOrStdout(), invoice.NextNumber(last, now, reset))
			return nil
		},
	}
	cmd.Flags().StringVar(&last, "last", "", "último número emitido")
	cmd.Flags().StringVar(&at, "at", "", "fecha de referencia YYYY-MM-DD (default: hoy)")
	cmd.Flags().BoolVar(&reset, "reset-monthly", false, "reiniciar el contador al cambiar de mes")
	return cmd
}

// newInvoiceNextCmd consulta la base para obtener el siguiente número de un usuario.
func newInvoiceNextCmd(load func() (*config.Config, error)) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Siguiente número de factura de un usuario (consulta PostgreSQL)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID == "" {
				return fmt.Errorf("--user es requerido")
			}
			cfg, err := load()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
			defer cancel()
			pool, err := postgres.NewPool(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			gen := billing.NewNumberGenerator(postgres.NewInvoiceRepository(pool), cfg.Finance.ResetInvoiceMonthly, time.Now, cliLogger(cfg))
			fmt.Fprintln(cmd.OutOrStdout(), gen.Next(ctx, userID))
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "ID del usuario dueño de las facturas")
	return cmd
}

