package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaoulBonsso/GM/core/report"
	"github.com/RaoulBonsso/GM/core/school"
	testutil "github.com/RaoulBonsso/GM/tests"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	var stdout bytes.Buffer
	return &commandLine{
		svc:     testutil.NewService(testutil.NewRepository(t, true)),
		reports: report.NewGenerator(report.DefaultConfig()),
		dir:     t.TempDir(),
		stdout:  &stdout,
	}, &stdout
}

type cliTest struct {
	name       string
	args       []string // without program name
	terminal   bool
	wantErr    error
	wantErrStr string
}

func Test_commandLine_run(t *testing.T) {
	cli, _ := setup(t)
	out := filepath.Join(cli.dir, "out.pdf")

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "export without kind", args: []string{"export"}, wantErr: errHelp},
		{name: "export help", args: []string{"export", "-h"}, wantErr: errHelp},
		{name: "bad flag", args: []string{"export", "-id", "un"}, wantErrStr: `invalid value "un" for flag -id: parse error`},
		{
			name:       "unknown kind",
			args:       []string{"export", "-kind", "classes"},
			wantErrStr: `unknown kind "classes", want one of expenses, payments, students, teachers`,
		},
		{name: "unknown format", args: []string{"export", "-kind", "students", "-format", "csv"}, wantErrStr: `unknown format "csv", want pdf or xlsx`},
		{name: "detail as sheet", args: []string{"export", "-kind", "students", "-id", "1", "-format", "xlsx"}, wantErrStr: "detail sheets are only rendered as pdf"},
		{name: "unknown record", args: []string{"export", "-kind", "payments", "-id", "42", "-out", out}, wantErr: school.ErrNotFound},
		{name: "terminal stdout", args: []string{"export", "-kind", "teachers", "-out", "-"}, terminal: true, wantErr: errTerminalOutput},
		{name: "list", args: []string{"export", "-kind", "teachers", "-out", out}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			isTerminalFunc = func(int) bool { return tt.terminal }

			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, errors.Cause(err))
			case tt.wantErrStr != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantErrStr, err.Error())
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func Test_commandLine_export(t *testing.T) {
	isTerminalFunc = func(int) bool { return false }

	tests := []struct {
		name      string
		args      []string
		wantFile  string // relative to the reports directory, empty for stdout
		wantMagic string
	}{
		{
			name:      "default file name",
			args:      []string{"export", "-kind", "students"},
			wantFile:  "liste_eleves_" + testutil.Today() + ".pdf",
			wantMagic: "%PDF",
		},
		{
			name:      "spreadsheet",
			args:      []string{"export", "-kind", "payments", "-format", "XLSX", "-search", "Barry"},
			wantFile:  "liste_paiements_" + testutil.Today() + ".xlsx",
			wantMagic: "PK",
		},
		{
			name:      "detail",
			args:      []string{"export", "-kind", "expenses", "-id", "3", "-title", "ignored"},
			wantFile:  "details_depense_3_" + testutil.Today() + ".pdf",
			wantMagic: "%PDF",
		},
		{
			name:      "piped stdout",
			args:      []string{"export", "-kind", "teachers", "-id", "2", "-out", "-"},
			wantMagic: "%PDF",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, stdout := setup(t)
			require.NoError(t, cli.run(append([]string{"admin"}, tt.args...)))

			if tt.wantFile == "" {
				assert.True(t, bytes.HasPrefix(stdout.Bytes(), []byte(tt.wantMagic)))
				return
			}
			path := filepath.Join(cli.dir, tt.wantFile)
			assert.Equal(t, path+" written\n", stdout.String())
			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(content, []byte(tt.wantMagic)))
		})
	}
}

func Test_commandLine_stats(t *testing.T) {
	cli, stdout := setup(t)
	require.NoError(t, cli.run([]string{"admin", "stats"}))

	var st school.Stats
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &st))
	assert.Equal(t, 5, st.Students.Total)
	assert.Equal(t, "225000", st.Payments.Collected.String())
	assert.Len(t, st.Expenses.ByCategory, 3)
}
