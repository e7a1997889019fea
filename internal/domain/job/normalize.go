package job

import (
	"slices"
	"strings"

	"github.com/honeycarbs/resume-assistant/internal/domain"
)

// Normalize deduplicates records by (title, company), fills empty cells with
// "N/A" and orders rows by the raw Date Posted string, newest-looking first.
//
// The date ordering is a plain string comparison: ISO timestamps and
// "N days ago" strings from different sources do not interleave by calendar date.
func Normalize(records []domain.JobRecord) domain.Table {
	type key struct {
		title   string
		company string
	}

	seen := make(map[key]struct{}, len(records))
	rows := make([]domain.JobRecord, 0, len(records))

	for _, r := range records {
		k := key{title: r.Title, company: r.Company}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		rows = append(rows, r.Filled())
	}

	slices.SortStableFunc(rows, func(a, b domain.JobRecord) int {
		return strings.Compare(b.DatePosted, a.DatePosted)
	})

	return domain.NewTable(rows)
}
