package add

import (
	"context"
	"time"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/printers"
)

type Add struct {
	Title    string
	Start    time.Time
	Duration time.Duration
	Type     event.EventType

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	e, err := n.Service.Create(ctx, n.Title, n.Start, n.Start.Add(n.Duration), n.Type)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(e.Start.Local().Format("January 2, 2006"))
	pp.Events(e)
	return nil
}
