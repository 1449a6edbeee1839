package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"precisecalc/internal/domain"
)

// renderHistory печатает историю таблицей, от старых записей к новым.
func renderHistory(w io.Writer, title string, entries []domain.Entry) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintf(w, "%s: (empty)\n", title)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"#", "Operation", "Result"})
	for i, e := range entries {
		t.AppendRow(table.Row{i + 1, e.Description, e.Result.String()})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	t.Render()
}
