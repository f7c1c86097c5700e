package get

import (
	"context"
	"fmt"
	"time"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/printers"
)

type Get struct {
	ShowID bool
	Hours  int

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	all, err := n.Service.Upcoming(ctx, time.Now(), n.Hours)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount(fmt.Sprintf("Next %dh", n.Hours), len(all))
	pp.Events(all...)
	return nil
}
