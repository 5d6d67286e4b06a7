package main

import (
	"errors"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	registerEmail string
	registerPhone string
)

// registerCmd runs the full registration sequence on the gateway
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a user by email or phone",
	Long: `Register a user with the ContactsManager service.

Exactly one of --email or --phone is required. The gateway validates the
contact, checks contact-store access, and initializes the session.`,
	RunE: runRegister,
}

// statusCmd shows the current registration
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current registration state",
	RunE: func(*cobra.Command, []string) error {
		return callGateway(http.MethodGet, "/session", nil)
	},
}

// clearCmd wipes the registration
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the current registration",
	RunE: func(*cobra.Command, []string) error {
		return callGateway(http.MethodDelete, "/session", nil)
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address to register")
	registerCmd.Flags().StringVar(&registerPhone, "phone", "", "Phone number to register")
}

func runRegister(*cobra.Command, []string) error {
	if (registerEmail == "") == (registerPhone == "") {
		return errors.New("provide exactly one of --email or --phone")
	}

	contact, contactType := registerEmail, "email"
	if registerPhone != "" {
		contact, contactType = registerPhone, "phone"
	}

	return callGateway(http.MethodPost, "/session/register", map[string]string{
		"contact":      contact,
		"contact_type": contactType,
	})
}
