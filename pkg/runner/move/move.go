package move

import (
	"context"
	"fmt"
	"time"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/layout"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/printers"
)

type Move struct {
	ID     string
	To     time.Time
	Window layout.Window

	Service *app.Service
}

// Do reschedules an event with the same snap-and-validate rule a drag
// uses: the target start snaps to the 15-minute grid and the moved range
// must fit inside the visible window.
func (n *Move) Do(ctx context.Context) error {
	e, err := n.Service.Get(ctx, n.ID)
	if err != nil {
		return err
	}

	minute := n.Window.ClampMinutes(n.Window.MinuteOfDay(n.To))
	pointerPx := n.Window.PixelsFromWindowStart(minute - n.Window.StartHour*60)
	cand := layout.Candidate(n.To, pointerPx, e, n.Window)
	if !cand.Valid {
		return fmt.Errorf("move: %s does not fit between %02d:00 and %02d:00",
			cand.Start.Local().Format("15:04"), n.Window.StartHour, n.Window.EndHour)
	}

	moved, err := n.Service.Reschedule(ctx, n.ID, cand.Start)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Moved")
	pp.Events(moved)
	return nil
}
