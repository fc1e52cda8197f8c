// CSV table sink for the bulk tabular form.

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/structcalc/loadcomb/expand"
)

// csvHeader is the fixed column set of a combination table.
var csvHeader = []string{"combination", "load_case", "factor"}

// WriteCSV writes rows as a single CSV table with a header line. Factors
// are rendered with the shortest representation that round-trips.
func WriteCSV(w io.Writer, rows []expand.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{r.Combination, r.LoadCase, strconv.FormatFloat(r.Factor, 'g', -1, 64)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: write csv row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
