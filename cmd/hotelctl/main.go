// Command hotelctl administers a hotelcore document slot: it seeds a fresh
// store, moves full documents in and out as JSON, generates spreadsheet
// templates, runs bulk imports, and prints the dashboard and financial
// summaries. The slot is selected through the HOTELCORE_* environment
// variables (see internal/config).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"hotelcore/internal/config"
	"hotelcore/internal/logging"
	"hotelcore/internal/slot"
	"hotelcore/internal/spreadsheet"
	"hotelcore/internal/store"
	"hotelcore/pkg/domain"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func usage(stderr io.Writer) {
	fmt.Fprintln(stderr, `usage: hotelctl <command> [flags]

commands:
  init                        seed the slot if it holds no document
  export  -o FILE             write the full document as JSON
  import  -i FILE             replace the document from a JSON file
  template -c COLLECTION -o FILE
                              write the xlsx import template for a collection
  bulk-import -c COLLECTION -i FILE
                              import rows from an xlsx workbook
  dashboard                   print the dashboard summary
  finance -p PERIOD           print the financial summary (today|week|month|year)
  collections                 list collections with a spreadsheet schema`)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	cfg := config.Load()
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(stderr, "hotelctl: build logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	sl, err := slot.Open(ctx, cfg.SlotConfig())
	if err != nil {
		fmt.Fprintf(stderr, "hotelctl: open slot: %v\n", err)
		return 1
	}
	if c, ok := sl.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}
	st := store.New(sl, store.WithLogger(logger))

	if err := dispatch(ctx, st, logger, args, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "hotelctl: %v\n", err)
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, st *store.Store, logger *zap.Logger, args []string, stdout, stderr io.Writer) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "init":
		return st.Initialize(ctx)
	case "export":
		return runExport(ctx, st, rest, stdout)
	case "import":
		return runImport(ctx, st, rest)
	case "template":
		return runTemplate(rest)
	case "bulk-import":
		return runBulkImport(ctx, st, logger, rest, stdout)
	case "dashboard":
		return runDashboard(ctx, st, stdout)
	case "finance":
		return runFinance(ctx, st, rest, stdout)
	case "collections":
		for _, name := range spreadsheet.Collections() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runExport(ctx context.Context, st *store.Store, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	data, err := st.ExportDocument(ctx)
	if err != nil {
		return err
	}
	if *out == "" {
		_, err := stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(*out, data, 0o644)
}

func runImport(ctx context.Context, st *store.Store, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	in := fs.String("i", "", "input JSON file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("import: -i FILE is required")
	}
	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	return st.ImportDocument(ctx, data)
}

func runTemplate(args []string) error {
	fs := flag.NewFlagSet("template", flag.ContinueOnError)
	collection := fs.String("c", "", "collection name")
	out := fs.String("o", "", "output xlsx file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *collection == "" || *out == "" {
		return fmt.Errorf("template: -c COLLECTION and -o FILE are required")
	}
	data, err := spreadsheet.Template(*collection)
	if err != nil {
		return err
	}
	return os.WriteFile(*out, data, 0o644)
}

func runBulkImport(ctx context.Context, st *store.Store, logger *zap.Logger, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bulk-import", flag.ContinueOnError)
	collection := fs.String("c", "", "collection name")
	in := fs.String("i", "", "input xlsx file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *collection == "" || *in == "" {
		return fmt.Errorf("bulk-import: -c COLLECTION and -i FILE are required")
	}
	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	report, err := spreadsheet.Import(ctx, st, *collection, data, logger)
	if err != nil {
		return err
	}
	return printJSON(stdout, report)
}

func runDashboard(ctx context.Context, st *store.Store, stdout io.Writer) error {
	summary, err := st.DashboardSummary(ctx)
	if err != nil {
		return err
	}
	return printJSON(stdout, summary)
}

func runFinance(ctx context.Context, st *store.Store, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("finance", flag.ContinueOnError)
	period := fs.String("p", string(domain.PeriodMonth), "period: today|week|month|year")
	if err := fs.Parse(args); err != nil {
		return err
	}
	summary, err := st.FinancialSummary(ctx, domain.Period(*period))
	if err != nil {
		return err
	}
	return printJSON(stdout, summary)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
