// finctl herramientas de operación para finanzas-api: migraciones, datos de demo
// y cálculos de factura sin levantar el servidor.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/finanzas-api/pkg/config"
	"github.com/jhoicas/finanzas-api/pkg/logger"
)

var version = "0.1.0"

// newRootCmd arma el árbol de comandos. load difiere la lectura de config para
// que los comandos offline no la necesiten.
func newRootCmd(load func() (*config.Config, error)) *cobra.Command {
	root := &cobra.Command{
		Use:           "finctl",
		Short:         "Herramientas de línea de comandos para finanzas-api",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMigrateCmd(load),
		newSeedCmd(load),
		newInvoiceCmd(load),
	)
	return root
}

func cliLogger(cfg *config.Config) *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Output: os.Stderr})
}

func main() {
	if err := newRootCmd(config.Load).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "finctl: %v\n", err)
		os.Exit(1)
	}
}
