package diagnostics_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mdbview/mdbview/internal/service/diagnostics"
	"github.com/mdbview/mdbview/pkg/mdb"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHistogramCountsByKind(t *testing.T) {
	t.Parallel()

	r := mdb.Root{
		Pages: []mdb.Page{
			{Header: mdb.PageHeader{Kind: mdb.KindData}},
			{Header: mdb.PageHeader{Kind: mdb.KindData}},
			{Header: mdb.PageHeader{Kind: mdb.KindStringExt}},
		},
	}

	svc := diagnostics.NewService(newTestLogger())
	hist := svc.Histogram(r)

	assert.Equal(t, 3, hist.Total)
	assert.Equal(t, []diagnostics.KindCount{
		{Kind: mdb.KindData, Count: 2},
		{Kind: mdb.KindStringExt, Count: 1},
	}, hist.Counts)
}

func TestAnomaliesFlagsReservedKindsAndSuspiciousFlags(t *testing.T) {
	t.Parallel()

	r := mdb.Root{
		Pages: []mdb.Page{
			{Offset: 0, Header: mdb.PageHeader{Kind: mdb.KindData}},
			{Offset: 1024, Header: mdb.PageHeader{Kind: mdb.KindReserved9}},
			{Offset: 2048, Header: mdb.PageHeader{Kind: mdb.KindData, Flags: mdb.FlagFlag2}},
		},
	}

	svc := diagnostics.NewService(newTestLogger())
	anomalies := svc.Anomalies(r)

	assert.Len(t, anomalies, 2)
	assert.Equal(t, diagnostics.AnomalyReservedKind, anomalies[0].Reason)
	assert.Equal(t, diagnostics.AnomalySuspiciousFlags, anomalies[1].Reason)
}

func TestStringsDedupsAndSorts(t *testing.T) {
	t.Parallel()

	body := []byte("zebra\x00alpha\x00alpha\x00")
	r := mdb.Root{
		Pages: []mdb.Page{
			{Header: mdb.PageHeader{Kind: mdb.KindStringExt}, Body: body},
		},
	}

	svc := diagnostics.NewService(newTestLogger())
	strs := svc.Strings(r)

	assert.Equal(t, []string{"alpha", "zebra"}, strs)
}

func TestStringsIgnoresUnrelatedPageKinds(t *testing.T) {
	t.Parallel()

	r := mdb.Root{
		Pages: []mdb.Page{
			{Header: mdb.PageHeader{Kind: mdb.KindData}, Body: []byte("not extracted\x00")},
		},
	}

	svc := diagnostics.NewService(newTestLogger())
	assert.Empty(t, svc.Strings(r))
}
