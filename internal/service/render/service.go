//go:generate mockgen -destination=./mocks/service_mock.go -package=render_test github.com/mdbview/mdbview/internal/service/render Service

// Package render turns decoded mdb values into the CLI's human-readable
// output: a summary table, a page-kind histogram bar chart scaled to the
// real terminal width, and a colorized hex dump. Everything here is
// display logic only; it never mutates the values it is given.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aybabtme/rgbterm"
	"github.com/mdbview/mdbview/internal/service/diagnostics"
	"github.com/mdbview/mdbview/pkg/domain"
	"github.com/mdbview/mdbview/pkg/mdb"
	terminaldimensions "github.com/wayneashleyberry/terminal-dimensions"
)

const (
	fieldWidth = 22
	valueWidth = 40

	headerColorR, headerColorG, headerColorB uint8 = 0x4d, 0xa6, 0xff
	bodyColorR, bodyColorG, bodyColorB        uint8 = 0xc8, 0xc8, 0xc8

	defaultBarWidth = 60
	minBarWidth     = 10

	bytesPerHexRow = 16
)

// Service renders decoded mdb values for terminal display.
type Service interface {
	Summary(w io.Writer, r mdb.Root, fh string)
	Pages(w io.Writer, hist diagnostics.PageHistogram)
	Hex(w io.Writer, buf []byte, offset, length int, headerEnd int)
}

type service struct {
	log *slog.Logger
}

// NewService builds a render Service.
func NewService(log *slog.Logger) Service {
	return &service{log: log}
}

func (s *service) Summary(w io.Writer, r mdb.Root, path string) {
	s.log.Debug("rendering summary", slog.String("file", path))

	row := func(field, value string) {
		fmt.Fprintf(w, "%-*s %-*s\n", fieldWidth, field, valueWidth, value)
	}

	row("FILE", path)
	row("HEADER VALID", fmt.Sprintf("%v", r.HeaderValid))
	row("PAGE SIZE", fmt.Sprintf("%d", r.PageSize))
	row("GENERATION", r.Generation.String())
	row("ENGINE VERSION", s.versionString(r))
	row("PAGE COUNT", fmt.Sprintf("%d", len(r.Pages)))
	row("SINGLE_EX RECORDS", fmt.Sprintf("%d", len(r.SingleExes)))
	row("GROUPED_EX RECORDS", fmt.Sprintf("%d", len(r.GroupedExs)))

	for i, rec := range r.SingleExes {
		s.renderSingleEx(w, i, rec)
	}

	for i, rec := range r.GroupedExs {
		s.renderGroupedEx(w, i, rec)
	}
}

func (s *service) versionString(r mdb.Root) string {
	if !r.Version.Known {
		return "unknown"
	}

	return fmt.Sprintf("%d.%d.%d", r.Version.Major, r.Version.Minor, r.Version.Build)
}

func (s *service) renderSingleEx(w io.Writer, idx int, rec mdb.SingleEx) {
	fh := domain.DecodeFileHandle(rec.FileHandle)

	fmt.Fprintf(w, "\n--- single_ex[%d] ---\n", idx)
	fmt.Fprintf(w, "%-*s %s\n", fieldWidth, "FILE", fh.EstimatedPath)
	fmt.Fprintf(w, "%-*s %s\n", fieldWidth, "TYPE", domain.FileTypeName(rec.FileTypeEx))
	fmt.Fprintf(w, "%-*s %.3fs\n", fieldWidth, "DURATION", domain.DurationSeconds(rec.Duration))
	fmt.Fprintf(w, "%-*s %.2f MB\n", fieldWidth, "SIZE", domain.SizeMB(rec.Size))

	if rec.CameraModel.Present {
		fmt.Fprintf(w, "%-*s %s\n", fieldWidth, "CAMERA MODEL", rec.CameraModel.Value)
	}

	if year, ok := domain.ActualYear(optionalOrZero(rec.CreationTime)); ok {
		fmt.Fprintf(w, "%-*s %d\n", fieldWidth, "CREATED (YEAR)", year)
	}
}

func (s *service) renderGroupedEx(w io.Writer, idx int, rec mdb.GroupedEx) {
	fh := domain.DecodeFileHandle(rec.FileHandle)

	fmt.Fprintf(w, "\n--- grouped_ex[%d] ---\n", idx)
	fmt.Fprintf(w, "%-*s %s\n", fieldWidth, "FILE", fh.EstimatedPath)

	if res, ok := domain.Resolution(rec.Width, rec.Height); ok {
		fmt.Fprintf(w, "%-*s %s\n", fieldWidth, "RESOLUTION", res)
	}

	if fps, ok := domain.FrameRate(rec.FrameRateTimescale, rec.FrameRateDuration); ok {
		fmt.Fprintf(w, "%-*s %.3f fps\n", fieldWidth, "FRAME RATE", fps)
	}

	fmt.Fprintf(w, "%-*s %s\n", fieldWidth, "CONTENT ID", rec.Content.Hex)
}

func optionalOrZero(o mdb.Optional[mdb.DateTime]) mdb.DateTime {
	if !o.Present {
		return mdb.DateTime{}
	}

	return o.Value
}

func (s *service) Pages(w io.Writer, hist diagnostics.PageHistogram) {
	barWidth := s.barWidth()

	for _, row := range hist.Counts {
		bar := s.bar(row.Count, hist.Total, barWidth)
		fmt.Fprintf(w, "%-12s %5d %s\n", row.Kind.String(), row.Count, bar)
	}
}

func (s *service) barWidth() int {
	width, err := terminaldimensions.Width()
	if err != nil || width == 0 {
		s.log.Debug("terminal width unavailable, using default bar width")

		return defaultBarWidth
	}

	const reservedForLabel = 20

	w := int(width) - reservedForLabel
	if w < minBarWidth {
		return minBarWidth
	}

	return w
}

func (s *service) bar(count, total, width int) string {
	if total == 0 {
		return ""
	}

	filled := count * width / total
	if filled == 0 && count > 0 {
		filled = 1
	}

	return strings.Repeat("#", filled)
}

// Hex renders buf[offset:offset+length] as a classic hex+ASCII dump,
// colorizing bytes at absolute positions below headerEnd differently from
// all later bytes. Page headers further into the buffer get no distinct
// color.
func (s *service) Hex(w io.Writer, buf []byte, offset, length, headerEnd int) {
	end := offset + length
	if end > len(buf) {
		end = len(buf)
	}

	for rowStart := offset; rowStart < end; rowStart += bytesPerHexRow {
		rowEnd := rowStart + bytesPerHexRow
		if rowEnd > end {
			rowEnd = end
		}

		fmt.Fprintf(w, "%08x  ", rowStart)

		for i := rowStart; i < rowEnd; i++ {
			fmt.Fprint(w, s.colorizeByte(buf[i], i, headerEnd))
			fmt.Fprint(w, " ")
		}

		fmt.Fprint(w, " ")
		fmt.Fprintln(w, asciiPreview(buf[rowStart:rowEnd]))
	}
}

func (s *service) colorizeByte(b byte, pos, headerEnd int) string {
	hex := fmt.Sprintf("%02x", b)

	if pos < headerEnd {
		return rgbterm.FgString(hex, headerColorR, headerColorG, headerColorB)
	}

	return rgbterm.FgString(hex, bodyColorR, bodyColorG, bodyColorB)
}

func asciiPreview(buf []byte) string {
	var sb strings.Builder

	for _, b := range buf {
		if b >= 0x20 && b <= 0x7E {
			sb.WriteByte(b)
		} else {
			sb.WriteByte('.')
		}
	}

	return sb.String()
}
