package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/score"
)

type Key struct{}

type row struct {
	typ     event.EventType
	aliases string
	meaning string
}

var types = []row{
	{event.Meeting, "meeting, meet", "Group meeting"},
	{event.OneOnOne, "1:1, 1on1, oneonone", "One on one"},
	{event.Social, "social", "Social gathering"},
	{event.Call, "call", "Phone or video call"},
	{event.Async, "async", "Async collaboration"},
	{event.Solo, "solo, focus", "Solo focus time (recharges)"},
	{event.Custom, "custom", "Anything else"},
}

func (k *Key) Do(ctx context.Context) error {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Type"), bold.Sprint("Aliases"), bold.Sprint("Base"), bold.Sprint("Meaning"))
	for _, r := range types {
		tbl.AddRow(string(r.typ), r.aliases, fmt.Sprintf("%+.0f", score.BaseCost(r.typ)), r.meaning)
	}

	u := color.New(color.Bold, color.Underline)
	_, _ = fmt.Fprintln(color.Output, u.Sprint("\nEvent types"))
	_, _ = fmt.Fprintln(color.Output, tbl)

	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Label"), bold.Sprint("Impact magnitude"))
	tbl.AddRow(string(event.Low), "< 2")
	tbl.AddRow(string(event.Medium), "2 - 6")
	tbl.AddRow(string(event.High), "6 - 12")
	tbl.AddRow(string(event.Extreme), ">= 12")

	_, _ = fmt.Fprintln(color.Output, u.Sprint("\nImpact labels"))
	_, _ = fmt.Fprintln(color.Output, tbl)

	return nil
}
