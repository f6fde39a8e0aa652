package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable writes data to w as a boxed table whose first row is the
// header. An empty data set prints nothing.
func PrintTable(w io.Writer, data [][]string) error {
	if len(data) == 0 {
		return nil
	}

	str, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	_, err = fmt.Fprintln(w, str)

	return err
}
