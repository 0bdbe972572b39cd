package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fkuebler/paymirror/internal/pkg/database"
	"github.com/fkuebler/paymirror/internal/pkg/env"
	"github.com/fkuebler/paymirror/internal/pkg/stripeapi"
	"github.com/fkuebler/paymirror/internal/pkg/sync"
)

var syncCustomerFlag string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Pull state from the Stripe API into the local mirror",
}

var syncPlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Sync all subscription plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cliSyncer().SyncPlans()
	},
}

var syncCouponsCmd = &cobra.Command{
	Use:   "coupons",
	Short: "Sync all coupons",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cliSyncer().SyncCoupons()
	},
}

var syncCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Sync all products and their SKUs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cliSyncer().SyncProducts()
	},
}

var syncOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Sync orders, optionally scoped to one customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cliSyncer().SyncOrders(syncCustomerFlag)
		if err != nil {
			return err
		}
		fmt.Printf("synced %d orders\n", n)
		return nil
	},
}

var syncInvoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Sync invoices, optionally scoped to one customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cliSyncer().SyncInvoices(syncCustomerFlag)
		if err != nil {
			return err
		}
		fmt.Printf("synced %d invoices\n", n)
		return nil
	},
}

var syncTransfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "Sync all transfers",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cliSyncer().SyncTransfers()
		if err != nil {
			return err
		}
		fmt.Printf("synced %d transfers\n", n)
		return nil
	},
}

var syncCustomerCmd = &cobra.Command{
	Use:   "customer [stripe-id]",
	Short: "Sync one customer with cards and subscriptions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cliSyncer().SyncCustomer(args[0])
		return err
	},
}

var syncAccountCmd = &cobra.Command{
	Use:   "account [stripe-id]",
	Short: "Sync one connected account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cliSyncer().SyncAccount(args[0])
		return err
	},
}

func init() {
	syncOrdersCmd.Flags().StringVar(&syncCustomerFlag, "customer", "", "Stripe customer id to scope the order sync to")
	syncInvoicesCmd.Flags().StringVar(&syncCustomerFlag, "customer", "", "Stripe customer id to scope the invoice sync to")
	syncCmd.AddCommand(syncPlansCmd, syncCouponsCmd, syncCatalogCmd, syncOrdersCmd,
		syncInvoicesCmd, syncTransfersCmd, syncCustomerCmd, syncAccountCmd)
	rootCmd.AddCommand(syncCmd)
}

func cliSyncer() *sync.Syncer {
	env.SetupEnvFile()
	database.SetupDatabase()

	return sync.NewSyncer(
		database.GetDB(),
		stripeapi.NewClient(env.GetEnv("STRIPE_SECRET_KEY", "")),
		newLogger(),
	)
}
