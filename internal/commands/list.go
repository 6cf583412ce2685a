package commands

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/0xDVC/hellocpu/internal/routes"
)

// PrintRoutes renders tbl as a table on w.
func PrintRoutes(w io.Writer, tbl routes.Table) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Method", "Path", "Summary"})
	tw.AppendSeparator()
	for _, r := range tbl {
		tw.AppendRow(table.Row{r.Method, r.Path, r.Summary})
	}
	tw.Render()
}
