package sync

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/gcal"
)

type Sync struct {
	CalendarID   string
	Horizon      time.Duration
	ClientID     string
	ClientSecret string
	TokenPath    string
	Auth         bool // run the interactive grant flow instead of pulling

	Service *app.Service
}

func (n *Sync) Do(ctx context.Context) error {
	if n.Auth {
		return n.authFlow(ctx)
	}

	client, err := gcal.NewClient(ctx, n.ClientID, n.ClientSecret, n.TokenPath)
	if err != nil {
		return err
	}

	events, err := client.UpcomingEvents(n.CalendarID, n.Horizon)
	if err != nil {
		return err
	}

	stored, err := n.Service.Import(ctx, events)
	if err != nil {
		return fmt.Errorf("sync: store events: %w", err)
	}

	fmt.Printf("synced %d events from %s\n", stored, n.CalendarID)
	return nil
}

func (n *Sync) authFlow(ctx context.Context) error {
	fmt.Println("Visit the URL below, grant read-only calendar access, and paste the code:")
	fmt.Println(gcal.AuthURL(n.ClientID, n.ClientSecret))
	fmt.Print("code: ")

	reader := bufio.NewReader(os.Stdin)
	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("sync: read auth code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("sync: empty auth code")
	}

	if err := gcal.Exchange(ctx, n.ClientID, n.ClientSecret, code, n.TokenPath); err != nil {
		return err
	}
	fmt.Printf("token saved to %s\n", n.TokenPath)
	return nil
}
