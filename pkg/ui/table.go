package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pterm/pterm"
	"github.com/yawik/modsync/pkg/assets"
	"github.com/yawik/modsync/pkg/permissions"
	"github.com/yawik/modsync/pkg/types"
)

// tableRenderer renders both terminal and text output; styled selects the
// terminal flavor.
type tableRenderer struct {
	out    io.Writer
	styled bool
	glyphs Glyphs
}

func newTable(out io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(header)

	style := table.StyleLight
	style.Options.DrawBorder = false
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)
	return t
}

func (r *tableRenderer) glyph(outcome types.Outcome) string {
	g := r.glyphs.For(outcome)
	if r.styled {
		return outcomeStyle(outcome).Render(g)
	}
	return g
}

func (r *tableRenderer) title(s string) {
	if r.styled {
		fmt.Fprint(r.out, pterm.DefaultSection.Sprint(s))
		return
	}
	fmt.Fprintf(r.out, "\n%s\n%s\n\n", s, strings.Repeat("=", len(s)))
}

func (r *tableRenderer) summary(line assets.SummaryLine) {
	if r.styled {
		var printer pterm.PrefixPrinter
		switch line.Kind {
		case assets.SummaryError:
			printer = pterm.Error
		case assets.SummaryNote:
			printer = pterm.Info
		default:
			printer = pterm.Success
		}
		fmt.Fprintln(r.out, printer.Sprint(line.Text))
		return
	}

	prefix := map[assets.SummaryKind]string{
		assets.SummaryError:   "[ERROR]",
		assets.SummaryNote:    "[NOTE]",
		assets.SummarySuccess: "[OK]",
	}[line.Kind]
	fmt.Fprintf(r.out, "%s %s\n", prefix, line.Text)
}

func (r *tableRenderer) RenderInstall(report *assets.Report) error {
	r.title(InstallTitle)

	if !report.Empty() {
		t := newTable(r.out, table.Row{"", "Module", "Method / Error"})
		for _, res := range report.Results {
			t.AppendRow(table.Row{r.glyph(res.Outcome), res.Name, res.Detail()})
		}
		t.Render()
		fmt.Fprintln(r.out)
	}

	for _, line := range report.Summary() {
		r.summary(line)
	}
	return nil
}

func (r *tableRenderer) RenderUninstall(removed []string) error {
	if len(removed) == 0 {
		return r.RenderMessage("No module assets were removed.")
	}
	for _, name := range removed {
		fmt.Fprintf(r.out, "%s %s\n", r.glyph(types.OutcomeOk), name)
	}
	return nil
}

func (r *tableRenderer) RenderStatus(statuses []assets.TargetStatus) error {
	if len(statuses) == 0 {
		return r.RenderMessage("No module assets are published.")
	}

	t := newTable(r.out, table.Row{"", "Module", "State", "Points To"})
	for _, st := range statuses {
		outcome := types.OutcomeOk
		switch {
		case st.State == assets.StateMissing:
			outcome = types.OutcomeWarning
		case !st.Healthy():
			outcome = types.OutcomeError
		}
		dest := st.LinkDest
		if r.styled && dest != "" {
			dest = mutedStyle.Render(dest)
		}
		t.AppendRow(table.Row{r.glyph(outcome), st.Name, string(st.State), dest})
	}
	t.Render()
	return nil
}

func (r *tableRenderer) RenderPermissions(result *permissions.Result) error {
	if result == nil || (len(result.Applied) == 0 && len(result.Failures) == 0) {
		return r.RenderMessage("No paths required permission changes.")
	}

	t := newTable(r.out, table.Row{"", "Path", "Kind", "Mode / Error"})
	for _, a := range result.Applied {
		mode := fmt.Sprintf("%#o", a.Target.Mode)
		if a.Created {
			mode += " (created)"
		}
		t.AppendRow(table.Row{r.glyph(types.OutcomeOk), a.Target.Path, string(a.Target.Kind), mode})
	}
	for _, f := range result.Failures {
		t.AppendRow(table.Row{r.glyph(types.OutcomeError), f.Target.Path, string(f.Target.Kind), f.Err.Error()})
	}
	t.Render()
	return nil
}

func (r *tableRenderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	if r.styled {
		fmt.Fprintln(r.out, pterm.Error.Sprint(err.Error()))
		return nil
	}
	fmt.Fprintf(r.out, "[ERROR] %s\n", err.Error())
	return nil
}

func (r *tableRenderer) RenderMessage(msg string) error {
	fmt.Fprintln(r.out, msg)
	return nil
}
