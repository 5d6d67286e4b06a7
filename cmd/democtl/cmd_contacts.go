package main

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	searchLimit    int
	recommendKind  string
	recommendLimit int
	seedCount      int
)

// accessCmd groups contact-store permission commands
var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Inspect or request contact-store access",
}

var accessStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current access status",
	RunE: func(*cobra.Command, []string) error {
		return callGateway(http.MethodGet, "/access/status", nil)
	},
}

var accessRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Request contact-store access",
	RunE: func(*cobra.Command, []string) error {
		return callGateway(http.MethodPost, "/access/request", nil)
	},
}

// contactsCmd groups contact search, recommendations, and test data
var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Search contacts, fetch recommendations, manage test data",
}

var contactsSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search contacts by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		q := url.Values{}
		q.Set("q", args[0])
		q.Set("limit", fmt.Sprint(searchLimit))
		return callGateway(http.MethodGet, "/contacts/search?"+q.Encode(), nil)
	},
}

var contactsRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Fetch contact recommendations",
	Long:  `Fetch recommendations. --kind selects invite, app-users, nearby, or all.`,
	RunE: func(*cobra.Command, []string) error {
		q := url.Values{}
		q.Set("kind", recommendKind)
		q.Set("limit", fmt.Sprint(recommendLimit))
		return callGateway(http.MethodGet, "/contacts/recommendations?"+q.Encode(), nil)
	},
}

var contactsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create bulk test contacts",
	RunE: func(*cobra.Command, []string) error {
		return callGateway(http.MethodPost, "/contacts/seed", map[string]int{"count": seedCount})
	},
}

var contactsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete previously seeded test contacts",
	RunE: func(*cobra.Command, []string) error {
		return callGateway(http.MethodPost, "/contacts/purge", nil)
	},
}

func init() {
	accessCmd.AddCommand(accessStatusCmd)
	accessCmd.AddCommand(accessRequestCmd)

	contactsSearchCmd.Flags().IntVar(&searchLimit, "limit", 25, "Maximum results")
	contactsRecommendCmd.Flags().StringVar(&recommendKind, "kind", "all", "Recommendation kind: invite, app-users, nearby, all")
	contactsRecommendCmd.Flags().IntVar(&recommendLimit, "limit", 25, "Maximum results per feed")
	contactsSeedCmd.Flags().IntVar(&seedCount, "count", 100, "How many test contacts to create")

	contactsCmd.AddCommand(contactsSearchCmd)
	contactsCmd.AddCommand(contactsRecommendCmd)
	contactsCmd.AddCommand(contactsSeedCmd)
	contactsCmd.AddCommand(contactsPurgeCmd)
}
