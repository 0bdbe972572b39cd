package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "paymirror",
	Short: "Mirror Stripe billing state into a local database",
	Long: `paymirror keeps a relational mirror of Stripe customers, cards, plans,
subscriptions, charges, invoices, orders and the product catalog.

The serve command runs the webhook receiver and the admin browser.
The sync commands pull state from the Stripe API on demand.`,
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
