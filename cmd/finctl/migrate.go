package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/finanzas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/finanzas-api/pkg/config"
)

func newMigrateCmd(load func() (*config.Config, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o revierte el esquema de PostgreSQL",
	}

	withMigrator := func(fn func(*postgres.Migrator) error) error {
		cfg, err := load()
		if err != nil {
			return err
		}
		mg, err := postgres.NewMigrator(cfg.DB.ConnectionString())
		if err != nil {
			return err
		}
		defer mg.Close()
		return fn(mg)
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Aplica todas las migraciones pendientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(mg *postgres.Migrator) error {
				if err := mg.Up(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "migraciones aplicadas")
				return nil
			})
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revierte migraciones (por defecto una)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps debe ser positivo")
			}
			return withMigrator(func(mg *postgres.Migrator) error {
				if err := mg.Down(steps); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d migración(es) revertida(s)\n", steps)
				return nil
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "cantidad de migraciones a revertir")

	status := &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión actual del esquema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(mg *postgres.Migrator) error {
				v, dirty, err := mg.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "versión %d (dirty=%t)\n", v, dirty)
				return nil
			})
		},
	}

	cmd.AddCommand(up, down, status)
	return cmd
}
