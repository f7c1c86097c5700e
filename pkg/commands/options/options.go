// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// WindowOptions selects the visible hours of the day grid.
type WindowOptions struct {
	FromHour int
	ToHour   int
}

// AddWindowArgs wires the visible-window flags on the provided command.
func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().IntVar(&o.FromHour, "from-hour", 7,
		"First visible hour of the day.")
	cmd.Flags().IntVar(&o.ToHour, "to-hour", 22,
		"Last visible hour of the day.")
}

// HorizonOptions captures a human-friendly look-ahead window.
type HorizonOptions struct {
	Horizon string
}

func AddHorizonArgs(cmd *cobra.Command, o *HorizonOptions) {
	cmd.Flags().StringVar(&o.Horizon, "horizon", "24h",
		"Look-ahead window, e.g. 24h, 3d, 1w2d.")
}

// IDOptions
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show event ids (needed for move and delete).")
}

// EventOptions captures the scheduling flags for adding events.
type EventOptions struct {
	At   string
	For  string
	Type string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		"Start time: RFC3339 or 15:04 (today).")
	cmd.Flags().StringVar(&o.For, "for", "30m",
		"Duration, e.g. 30m or 1h.")
	cmd.Flags().StringVarP(&o.Type, "type", "t", "custom",
		"Event type: meeting, one_on_one, social, call, async, solo, custom.")
}

// GoogleOptions configures the calendar sync client.
type GoogleOptions struct {
	CalendarID   string
	ClientID     string
	ClientSecret string
	TokenPath    string
	Auth         bool
}

func AddGoogleArgs(cmd *cobra.Command, o *GoogleOptions) {
	cmd.Flags().StringVar(&o.CalendarID, "calendar", "primary",
		"Calendar id to sync from.")
	cmd.Flags().StringVar(&o.ClientID, "client-id", "",
		"OAuth client id.")
	cmd.Flags().StringVar(&o.ClientSecret, "client-secret", "",
		"OAuth client secret.")
	cmd.Flags().StringVar(&o.TokenPath, "token", "",
		"Path to the saved OAuth token.")
	cmd.Flags().BoolVar(&o.Auth, "auth", false,
		"Run the interactive grant flow and save a token.")
}
