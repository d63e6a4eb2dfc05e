package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/RaoulBonsso/GM/apps"
	"github.com/RaoulBonsso/GM/core/report"
	"github.com/RaoulBonsso/GM/core/school"
)

var (
	isTerminalFunc = term.IsTerminal // mockable

	errHelp           = errors.New("help provided")
	errTerminalOutput = apps.NewArgumentError("refusing to write a binary document to a terminal, use -out PATH")
)

type (
	exportOptions struct {
		id     int
		sheet  bool
		title  string
		search string
	}

	exporter interface {
		export(ctx context.Context, opts exportOptions) (report.Artifact, error)
	}

	kindExporter[T any] struct {
		get       func(context.Context, int) (T, error)
		query     func(context.Context, string) ([]T, error)
		listPDF   func([]T, string) (report.Artifact, error)
		listSheet func([]T, string) (report.Artifact, error)
		detailPDF func(T) (report.Artifact, error)
	}

	commandLine struct {
		svc      *school.Service
		reports  *report.Generator
		dir      string // default output directory
		stdout   io.Writer
		stdoutFd int
	}
)

func (ke kindExporter[T]) export(ctx context.Context, opts exportOptions) (report.Artifact, error) {
	if opts.id > 0 {
		obj, err := ke.get(ctx, opts.id)
		if err != nil {
			return report.Artifact{}, pkgerrors.Wrapf(err, "getting record %d", opts.id)
		}
		return ke.detailPDF(obj)
	}

	objs, err := ke.query(ctx, opts.search)
	if err != nil {
		return report.Artifact{}, pkgerrors.Wrap(err, "querying records")
	}
	if opts.sheet {
		return ke.listSheet(objs, opts.title)
	}
	return ke.listPDF(objs, opts.title)
}

func (cli *commandLine) exporters() map[string]exporter {
	svc, reports := cli.svc, cli.reports
	return map[string]exporter{
		"students": kindExporter[school.Student]{
			get: svc.GetStudent,
			query: func(ctx context.Context, search string) ([]school.Student, error) {
				return svc.QueryStudents(ctx, school.StudentFilter{Search: search})
			},
			listPDF:   reports.StudentList,
			listSheet: reports.StudentSheet,
			detailPDF: reports.StudentDetail,
		},
		"teachers": kindExporter[school.Teacher]{
			get: svc.GetTeacher,
			query: func(ctx context.Context, search string) ([]school.Teacher, error) {
				return svc.QueryTeachers(ctx, school.TeacherFilter{Search: search})
			},
			listPDF:   reports.TeacherList,
			listSheet: reports.TeacherSheet,
			detailPDF: reports.TeacherDetail,
		},
		"expenses": kindExporter[school.Expense]{
			get: svc.GetExpense,
			query: func(ctx context.Context, search string) ([]school.Expense, error) {
				return svc.QueryExpenses(ctx, school.ExpenseFilter{Search: search})
			},
			listPDF:   reports.ExpenseList,
			listSheet: reports.ExpenseSheet,
			detailPDF: reports.ExpenseDetail,
		},
		"payments": kindExporter[school.Payment]{
			get: svc.GetPayment,
			query: func(ctx context.Context, search string) ([]school.Payment, error) {
				return svc.QueryPayments(ctx, school.PaymentFilter{Search: search})
			},
			listPDF:   reports.PaymentList,
			listSheet: reports.PaymentSheet,
			detailPDF: reports.PaymentDetail,
		},
	}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.stdout, "Usage:")
	fmt.Fprintln(cli.stdout, "  export -kind students|teachers|expenses|payments [-id ID] [-format pdf|xlsx] [-title TITLE] [-search TEXT] [-out PATH|-]")
	fmt.Fprintln(cli.stdout, "         - write a list, or the detail sheet of record ID")
	fmt.Fprintln(cli.stdout, "  stats  - print the dashboard statistics as JSON")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	exportCmd := flag.NewFlagSet("export", flag.ContinueOnError)
	exportCmd.SetOutput(cli.stdout)
	exportKind := exportCmd.String("kind", "", "The records to export: students, teachers, expenses or payments.")
	exportID := exportCmd.Int("id", 0, "Export the detail sheet of this record instead of the list.")
	exportFormat := exportCmd.String("format", "pdf", "The list format: pdf or xlsx.")
	exportTitle := exportCmd.String("title", "", "The list title.")
	exportSearch := exportCmd.String("search", "", "Only export the records matching this text.")
	exportOut := exportCmd.String("out", "", "The output file, - for stdout. Defaults to the generated file name in the reports directory.")

	switch args[1] {
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		if *exportKind == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportKind, *exportFormat, *exportOut, exportOptions{
			id:     *exportID,
			title:  *exportTitle,
			search: *exportSearch,
		})
	case "stats":
		return cli.stats()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) export(kind, format, out string, opts exportOptions) error {
	exporters := cli.exporters()
	exp, ok := exporters[kind]
	if !ok {
		kinds := make([]string, 0, len(exporters))
		for k := range exporters {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		return apps.NewArgumentErrorf("unknown kind %q, want one of %s", kind, strings.Join(kinds, ", "))
	}

	switch strings.ToLower(format) {
	case "pdf":
	case "xlsx":
		if opts.id > 0 {
			return apps.NewArgumentError("detail sheets are only rendered as pdf")
		}
		opts.sheet = true
	default:
		return apps.NewArgumentErrorf("unknown format %q, want pdf or xlsx", format)
	}

	if out == "-" && isTerminalFunc(cli.stdoutFd) {
		return errTerminalOutput
	}

	artifact, err := exp.export(context.Background(), opts)
	if err != nil {
		return pkgerrors.Wrapf(err, "exporting %s", kind)
	}

	if out == "-" {
		_, err = cli.stdout.Write(artifact.Content)
		return pkgerrors.Wrap(err, "writing to stdout")
	}
	if out == "" {
		out = filepath.Join(cli.dir, artifact.Filename)
	}
	if err = os.WriteFile(out, artifact.Content, 0o644); err != nil {
		return pkgerrors.Wrapf(err, "writing %s", out)
	}
	fmt.Fprintf(cli.stdout, "%s written\n", out)
	return nil
}

func (cli *commandLine) stats() error {
	st, err := cli.svc.Stats(context.Background())
	if err != nil {
		return pkgerrors.Wrap(err, "computing statistics")
	}

	enc := json.NewEncoder(cli.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}
