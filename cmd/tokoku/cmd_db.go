package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/tokoku/config"
	"github.com/shashiranjanraj/tokoku/database/schema"
	"github.com/shashiranjanraj/tokoku/database/seeders"
	"github.com/shashiranjanraj/tokoku/pkg/database"
)

// bootDB loads config and opens the database connection.
func bootDB() error {
	if err := config.Load(); err != nil {
		return err
	}
	return database.Connect()
}

// tokoku db:provision — create missing tables and seed defaults.
var provisionCmd = &cobra.Command{
	Use:   "db:provision",
	Short: "Create any missing tables and seed initial data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Provisioning schema…")
		return schema.EnsureSchema(database.DB)
	},
}

// tokoku db:seed — run every registered seeder.
var seedCmd = &cobra.Command{
	Use:   "db:seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootDB(); err != nil {
			return err
		}
		fmt.Println("Running seeders…")
		return seeders.RunAll(database.DB)
	},
}
