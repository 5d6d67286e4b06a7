package main

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	feedKind   string
	feedPage   int
	eventType  string
	eventTitle string
	eventDesc  string
	eventOpen  bool
)

// socialCmd groups follow-graph and feed commands
var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Follow contacts, read feeds, create events",
}

var socialFollowCmd = &cobra.Command{
	Use:   "follow <contact-id>",
	Short: "Follow a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return callGateway(http.MethodPost, "/social/follow", map[string]string{"contact_id": args[0]})
	},
}

var socialUnfollowCmd = &cobra.Command{
	Use:   "unfollow <contact-id>",
	Short: "Unfollow a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return callGateway(http.MethodDelete, "/social/follow/"+url.PathEscape(args[0]), nil)
	},
}

var socialCheckCmd = &cobra.Command{
	Use:   "check <contact-id>",
	Short: "Check whether you follow a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return callGateway(http.MethodGet, "/social/follow/"+url.PathEscape(args[0]), nil)
	},
}

var socialFollowersCmd = &cobra.Command{
	Use:   "followers",
	Short: "List contacts following you",
	RunE: func(*cobra.Command, []string) error {
		return callGateway(http.MethodGet, "/social/followers?page="+fmt.Sprint(feedPage), nil)
	},
}

var socialFollowingCmd = &cobra.Command{
	Use:   "following",
	Short: "List contacts you follow",
	RunE: func(*cobra.Command, []string) error {
		return callGateway(http.MethodGet, "/social/following?page="+fmt.Sprint(feedPage), nil)
	},
}

var socialFeedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Read an event feed",
	Long:  `Read a feed. --kind selects followed, for-you, or own.`,
	RunE: func(*cobra.Command, []string) error {
		q := url.Values{}
		q.Set("kind", feedKind)
		q.Set("page", fmt.Sprint(feedPage))
		return callGateway(http.MethodGet, "/social/feed?"+q.Encode(), nil)
	},
}

var socialEventCmd = &cobra.Command{
	Use:   "event",
	Short: "Create a social event",
	RunE: func(*cobra.Command, []string) error {
		return callGateway(http.MethodPost, "/social/events", map[string]any{
			"event_type":  eventType,
			"title":       eventTitle,
			"description": eventDesc,
			"is_public":   eventOpen,
		})
	},
}

func init() {
	socialFeedCmd.Flags().StringVar(&feedKind, "kind", "followed", "Feed kind: followed, for-you, own")

	for _, c := range []*cobra.Command{socialFollowersCmd, socialFollowingCmd, socialFeedCmd} {
		c.Flags().IntVar(&feedPage, "page", 1, "Page number")
	}

	socialEventCmd.Flags().StringVar(&eventType, "type", "", "Event type (required)")
	socialEventCmd.Flags().StringVar(&eventTitle, "title", "", "Event title (required)")
	socialEventCmd.Flags().StringVar(&eventDesc, "description", "", "Event description")
	socialEventCmd.Flags().BoolVar(&eventOpen, "public", false, "Make the event public")
	_ = socialEventCmd.MarkFlagRequired("type")
	_ = socialEventCmd.MarkFlagRequired("title")

	socialCmd.AddCommand(socialFollowCmd)
	socialCmd.AddCommand(socialUnfollowCmd)
	socialCmd.AddCommand(socialCheckCmd)
	socialCmd.AddCommand(socialFollowersCmd)
	socialCmd.AddCommand(socialFollowingCmd)
	socialCmd.AddCommand(socialFeedCmd)
	socialCmd.AddCommand(socialEventCmd)
}
