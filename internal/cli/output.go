package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// emit prints v as indented JSON when --json is set, otherwise calls table
// with a tabwriter that is flushed afterwards.
func (a *app) emit(w io.Writer, v any, table func(tw *tabwriter.Writer)) error {
	if a.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	table(tw)
	return tw.Flush()
}

func row(tw io.Writer, cols ...any) {
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)
}
