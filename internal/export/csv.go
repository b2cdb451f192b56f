// Package export renders recruited-worker records as a CSV download.
//
// The output is a header line plus one row per worker, every field wrapped
// in double quotes. Embedded quotes are doubled per RFC 4180.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain/recruited"
)

// header lists the exported columns, in order.
var header = []string{
	"Name",
	"Passport No",
	"Nationality",
	"Employer",
	"Job Title",
	"Arrival Date",
	"Work Permit No",
}

const dateLayout = "2006-01-02"

// Filename returns the download filename for an export generated at the
// given time, e.g. "glow_tours_recruited_candidates_2026-09-01.csv".
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_recruited_candidates_%s.csv", prefix, now.Format(dateLayout))
}

// WorkersCSV renders the given workers as CSV bytes: header plus one row per
// worker, so N workers always produce N+1 lines.
func WorkersCSV(workers []recruited.Worker) []byte {
	var b strings.Builder

	writeRow(&b, header)
	for _, w := range workers {
		arrival := ""
		if !w.ArrivalDate.IsZero() {
			arrival = w.ArrivalDate.Format(dateLayout)
		}
		writeRow(&b, []string{
			w.Name,
			w.PassportNo,
			w.Nationality,
			w.Employer,
			w.JobTitle,
			arrival,
			w.WorkPermitNo,
		})
	}

	return []byte(b.String())
}

// writeRow appends one CSV line with every field double-quote wrapped.
func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
