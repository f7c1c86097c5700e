package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	isatty "github.com/mattn/go-isatty"

	"github.com/jayvenma/SocialBatteryForecaster/pkg/event"
	"github.com/jayvenma/SocialBatteryForecaster/pkg/layout"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// Events renders the upcoming-events table. The impact column carries the
// same gradient color the day view uses.
func (pp *PrettyPrint) Events(events ...*event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 48
	if pp.ShowID {
		table.AddRow("ID", "WHEN", "TITLE", "TYPE", "IMPACT", "SOURCE")
	} else {
		table.AddRow("WHEN", "TITLE", "TYPE", "IMPACT", "SOURCE")
	}

	for _, e := range events {
		when := fmt.Sprintf("%s - %s",
			e.Start.Local().Format("Mon 15:04"),
			e.End.Local().Format("15:04"))
		impact := impactCell(e)
		source := string(e.Source)
		if e.ReadOnly() {
			source += " (read-only)"
		}
		if pp.ShowID {
			table.AddRow(e.ID, when, e.Title, string(e.Type), impact, source)
		} else {
			table.AddRow(when, e.Title, string(e.Type), impact, source)
		}
	}

	fmt.Println(table)
	fmt.Println("")
}

func impactCell(e *event.Event) string {
	label := fmt.Sprintf("%s (%.1f)", e.Label, e.Score)
	if color.NoColor {
		return label
	}
	rgb := layout.ScoreColor(e.Score)
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", rgb.R, rgb.G, rgb.B, label)
}
