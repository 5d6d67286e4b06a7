// democtl drives a running contactsdemo gateway from the command line.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	gatewayURL string
	timeout    time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "democtl",
	Short: "Control a contactsdemo gateway",
	Long: `democtl talks to a running contactsdemo gateway over HTTP.

Typical flow:
  democtl access status
  democtl register --email user@example.com
  democtl contacts seed --count 120
  democtl social follow <contact-id>`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&gatewayURL, "gateway", defaultGatewayURL(), "Gateway base URL (or set CM_DEMO_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(accessCmd)
	rootCmd.AddCommand(contactsCmd)
	rootCmd.AddCommand(socialCmd)
}

func defaultGatewayURL() string {
	if url := os.Getenv("CM_DEMO_URL"); url != "" {
		return url
	}
	return "http://localhost:8080"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
