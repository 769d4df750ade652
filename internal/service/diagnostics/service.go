//go:generate mockgen -destination=./mocks/service_mock.go -package=diagnostics_test github.com/mdbview/mdbview/internal/service/diagnostics Service

// Package diagnostics derives analysis views from a decoded mdb Root: a
// page-kind histogram, a list of reserved/suspicious pages, and extracted
// string tables. Everything here is purely derivative of mdb.Root, the way
// the teacher's display service is purely derivative of records.Root.
package diagnostics

import (
	"log/slog"
	"sort"

	"github.com/mdbview/mdbview/pkg/mdb"
)

// Service analyzes a decoded Root for structural anomalies and summaries.
type Service interface {
	Histogram(r mdb.Root) PageHistogram
	Anomalies(r mdb.Root) []Anomaly
	Strings(r mdb.Root) []string
}

type service struct {
	log *slog.Logger
}

// NewService builds a diagnostics Service.
func NewService(log *slog.Logger) Service {
	return &service{log: log}
}

// KindCount is one row of a PageHistogram: a page kind and how many pages
// of that kind were found.
type KindCount struct {
	Kind  mdb.Kind
	Count int
}

// PageHistogram is the full per-kind page count, sorted by kind value, plus
// the total page count for scaling bar widths.
type PageHistogram struct {
	Counts []KindCount
	Total  int
}

// AnomalyKind classifies why a page was flagged.
type AnomalyKind int

const (
	// AnomalyReservedKind flags a page whose kind is in the observed-but-
	// undocumented set (9, 13).
	AnomalyReservedKind AnomalyKind = iota
	// AnomalySuspiciousFlags flags a page whose high-bit flags combination
	// (0x40 or 0x80) is undocumented.
	AnomalySuspiciousFlags
)

// Anomaly is one flagged page, with enough context to locate it in a hex
// dump.
type Anomaly struct {
	Offset int
	Kind   mdb.Kind
	Flags  mdb.Flags
	Reason AnomalyKind
}

func (s *service) Histogram(r mdb.Root) PageHistogram {
	counts := make(map[mdb.Kind]int)
	for _, p := range r.Pages {
		counts[p.Header.Kind]++
	}

	rows := make([]KindCount, 0, len(counts))
	for k, c := range counts {
		rows = append(rows, KindCount{Kind: k, Count: c})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Kind < rows[j].Kind })

	s.log.Debug("computed page histogram", slog.Int("distinct_kinds", len(rows)))

	return PageHistogram{Counts: rows, Total: len(r.Pages)}
}

func (s *service) Anomalies(r mdb.Root) []Anomaly {
	out := make([]Anomaly, 0)

	for _, p := range r.Pages {
		switch {
		case p.Header.Kind.Reserved():
			out = append(out, Anomaly{
				Offset: p.Offset,
				Kind:   p.Header.Kind,
				Flags:  p.Header.Flags,
				Reason: AnomalyReservedKind,
			})
		case p.Header.Flags.Suspicious():
			out = append(out, Anomaly{
				Offset: p.Offset,
				Kind:   p.Header.Kind,
				Flags:  p.Header.Flags,
				Reason: AnomalySuspiciousFlags,
			})
		}
	}

	s.log.Debug("computed page anomalies", slog.Int("count", len(out)))

	return out
}

func (s *service) Strings(r mdb.Root) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, p := range r.Pages {
		if p.Header.Kind != mdb.KindStringExt && p.Header.Kind != mdb.KindAutoIDHash {
			continue
		}

		for _, str := range mdb.StringExtStrings(p) {
			if _, ok := seen[str]; ok {
				continue
			}

			seen[str] = struct{}{}

			out = append(out, str)
		}
	}

	sort.Strings(out)

	s.log.Debug("extracted string table", slog.Int("count", len(out)))

	return out
}
