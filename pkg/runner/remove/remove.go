package remove

import (
	"context"
	"fmt"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/app"
)

type Remove struct {
	ID string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if err := n.Service.Delete(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", n.ID)
	return nil
}
