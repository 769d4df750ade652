// Package cli provides the root command and CLI interface for the mdbview
// application. It serves as the entry point for interacting with GoPro
// mdb media-index files.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mdbview/mdbview/internal/container"
	"github.com/mdbview/mdbview/pkg/mdb"
	"github.com/spf13/cobra"
)

const (
	minStringLen = 4
	maxStringLen = 64
	hexArgCount  = 2
	hexHeaderLen = 8
)

// NewCommand builds the mdbview root command: one positional file path and
// a set of mutually exclusive output-mode flags.
func NewCommand(log *slog.Logger, ctr *container.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdbview <file>",
		Short: "Decode and inspect a GoPro mdb media-index file",
		Long: `mdbview reads a GoPro mdb*.db media-index file (McObject eXtremeDB format)
and prints its structure: header/version detection, page layout, and the
single_ex/grouped_ex records it finds.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, log, ctr)
		},
	}

	cmd.Flags().Bool("json", false, "serialize the decoded model as JSON")
	cmd.Flags().Bool("dict", false, "print detected version, table, and struct field names")
	cmd.Flags().Bool("analyze", false, "print table locations, string breakdown, and pointer counts")
	cmd.Flags().Bool("strings", false, "print every printable run of 4-64 chars as offset: string")
	cmd.Flags().Bool("fields", false, "print the known field name/offset table")
	cmd.Flags().Bool("pages", false, "print the page-kind histogram")
	cmd.Flags().Bool("hex", false, "hex + ASCII dump of OFFSET LENGTH (trailing positional args)")

	cmd.MarkFlagsMutuallyExclusive("json", "dict", "analyze", "strings", "fields", "pages", "hex")

	return cmd
}

func run(cmd *cobra.Command, args []string, log *slog.Logger, ctr *container.Container) error {
	if len(args) == 0 {
		return NewUsageError(ErrFileMustBeProvided)
	}

	path := args[0]
	trailing := args[1:]

	hex, _ := cmd.Flags().GetBool("hex")
	if hex {
		return runHex(cmd, path, trailing, ctr)
	}

	if len(trailing) > 0 {
		return NewUsageError(fmt.Errorf("%w: %q", ErrTooManyArguments, strings.Join(trailing, " ")))
	}

	if flagSet(cmd, "strings") {
		printStrings(cmd, path, ctr)

		return nil
	}

	root, err := ctr.DecodeService.DecodeFile(path)
	if err != nil {
		return err
	}

	switch {
	case flagSet(cmd, "json"):
		return printJSON(cmd, root)
	case flagSet(cmd, "dict"):
		printDict(cmd, root)
	case flagSet(cmd, "analyze"):
		printAnalyze(cmd, ctr, root)
	case flagSet(cmd, "fields"):
		printFields(cmd)
	case flagSet(cmd, "pages"):
		ctr.RenderService.Pages(cmd.OutOrStdout(), ctr.DiagnosticsService.Histogram(root))
	default:
		ctr.RenderService.Summary(cmd.OutOrStdout(), root, path)
	}

	log.Debug("command completed", slog.String("file", path))

	return nil
}

func flagSet(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)

	return v
}

func printJSON(cmd *cobra.Command, root mdb.Root) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("failed to encode decoded model as json: %w", err)
	}

	return nil
}

func printDict(cmd *cobra.Command, root mdb.Root) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "version: %s\n", versionString(root))
	fmt.Fprintf(w, "generation: %s\n", root.Generation.String())
	fmt.Fprintln(w, "tables: single_ex, grouped_ex")

	printFields(cmd)
}

func versionString(root mdb.Root) string {
	if !root.Version.Known {
		return "unknown"
	}

	return fmt.Sprintf("%d.%d.%d", root.Version.Major, root.Version.Minor, root.Version.Build)
}

func printFields(cmd *cobra.Command) {
	w := cmd.OutOrStdout()

	for _, f := range mdb.KnownFields {
		fmt.Fprintf(w, "%-12s %-24s offset %d\n", f.Struct, f.Field, f.Offset)
	}
}

func printAnalyze(cmd *cobra.Command, ctr *container.Container, root mdb.Root) {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "version: %s\n", versionString(root))
	fmt.Fprintf(w, "generation: %s\n", root.Generation.String())
	fmt.Fprintf(w, "pages: %d\n", len(root.Pages))
	fmt.Fprintf(w, "single_ex records: %d\n", len(root.SingleExes))
	fmt.Fprintf(w, "grouped_ex records: %d\n", len(root.GroupedExs))

	for _, p := range mdb.PagesByKind(root.Pages, mdb.KindExtension) {
		ext := mdb.Extension(p)
		fmt.Fprintf(w, "extension @%#x: table=%d continuation=%d\n", p.Offset, ext.TableID, ext.ContinuationSize)
	}

	for _, p := range mdb.PagesByKind(root.Pages, mdb.KindIndexDir) {
		idx := mdb.IndexDir(p)
		fmt.Fprintf(w, "index_dir @%#x: user=%d align_data=%d\n", p.Offset, idx.User, idx.AlignData)
	}

	fileSize := len(root.Pages) * root.PageSize

	pointerCount := 0
	for _, p := range mdb.PagesByKind(root.Pages, mdb.KindAutoIDOvf) {
		pointerCount += len(mdb.AutoIDOvfPointers(p, fileSize))
	}

	fmt.Fprintf(w, "autoid_ovf pointers: %d\n", pointerCount)

	strs := ctr.DiagnosticsService.Strings(root)
	fmt.Fprintf(w, "string table entries: %d\n", len(strs))

	anomalies := ctr.DiagnosticsService.Anomalies(root)
	fmt.Fprintf(w, "anomalous pages: %d\n", len(anomalies))
}

func printStrings(cmd *cobra.Command, path string, ctr *container.Container) {
	w := cmd.OutOrStdout()

	buf, err := readRaw(ctr, path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "failed to read %q: %v\n", path, err)

		return
	}

	for _, m := range mdb.FindStrings(buf, minStringLen, maxStringLen) {
		fmt.Fprintf(w, "%#08x: %s\n", m.Offset, m.Value)
	}
}

func readRaw(ctr *container.Container, path string) ([]byte, error) {
	f, err := ctr.FileSystem.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	return buf, nil
}

func runHex(cmd *cobra.Command, path string, trailing []string, ctr *container.Container) error {
	if len(trailing) != hexArgCount {
		return NewUsageError(ErrHexNeedsTwoArgs)
	}

	offset, err := parseNumericArg(trailing[0])
	if err != nil {
		return NewUsageError(fmt.Errorf("%w: %w", ErrInvalidHexOffset, err))
	}

	length, err := parseNumericArg(trailing[1])
	if err != nil {
		return NewUsageError(fmt.Errorf("%w: %w", ErrInvalidHexLength, err))
	}

	buf, err := readRaw(ctr, path)
	if err != nil {
		return err
	}

	ctr.RenderService.Hex(cmd.OutOrStdout(), buf, offset, length, hexHeaderLen)

	return nil
}

func parseNumericArg(s string) (int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseInt(s[2:], 16, 64)

		return int(v), err
	}

	v, err := strconv.ParseInt(s, 10, 64)

	return int(v), err
}
