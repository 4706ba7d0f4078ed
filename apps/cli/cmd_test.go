package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/talanta/core"
	"github.com/trezcool/talanta/core/chart"
	"github.com/trezcool/talanta/core/dashboard"
	"github.com/trezcool/talanta/core/intelligence"
	"github.com/trezcool/talanta/core/rating"
	"github.com/trezcool/talanta/services/logger"
)

const payload = `{
	"success": true,
	"data": {
		"categories": [
			{"category_id": 1, "category_name": "Linguistic Intelligence", "average_rating": 4.6, "record_count": 3},
			{"category_id": 2, "category_name": "Telepathy", "average_rating": 2, "record_count": 1}
		],
		"summary": {"average_overall": 4.6, "total_records": 4, "filtered_period": "All Time"}
	}
}`

func setup(t *testing.T, stdin string) (*commandLine, *bytes.Buffer) {
	conf := &core.Config{Env: "TEST", TestMode: true}
	logger := logsvc.NewRollbarLogger(log.New(io.Discard, "", 0), conf)

	orig := isTerminalFunc
	isTerminalFunc = func() bool { return false }
	t.Cleanup(func() { isTerminalFunc = orig })

	out := new(bytes.Buffer)
	return &commandLine{
		svc: dashboard.NewService(logger, rating.DefaultThresholds, chart.DefaultMinAngle),
		in:  strings.NewReader(stdin),
		out: out,
	}, out
}

func writePayload(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func runCLITests(t *testing.T, tests []cliTest) {
	for _, tt := range tests {
		args := append([]string{"talanta"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli, _ := setup(t, "")
			if err := cli.run(args); err != nil {
				if tt.wantErr != nil {
					if err != tt.wantErr {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if !strings.Contains(err.Error(), tt.wantErrStr) {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
			} else if tt.wantErr != nil || tt.wantErrStr != "" {
				t.Errorf("cli.run() error = nil, wantErr %v%s", tt.wantErr, tt.wantErrStr)
			}
		})
	}
}

func Test_commandLine_run(t *testing.T) {
	path := writePayload(t, payload)
	broken := writePayload(t, `{"success": tru`)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "help", args: []string{"cards", "-h"}, wantErr: errHelp},
		{name: "cards: no file", args: []string{"cards"}, wantErr: errHelp},
		{name: "cards: missing file", args: []string{"cards", "-file", filepath.Join(t.TempDir(), "lol.json")}, wantErrStr: "opening payload"},
		{name: "cards: broken file", args: []string{"cards", "-file", broken}, wantErrStr: "decoding payload"},
		{name: "cards", args: []string{"cards", "-file", path}},
		{name: "pie: no file", args: []string{"pie"}, wantErr: errHelp},
		{name: "pie: invalid min", args: []string{"pie", "-file", path, "-min", "360"}, wantErrStr: "min must be between 0 and 360"},
		{name: "pie", args: []string{"pie", "-file", path, "-min", "5"}},
		{name: "categories", args: []string{"categories"}},
		{name: "filter", args: []string{"filter", "-id", "current-year"}},
	}
	runCLITests(t, tests)
}

func Test_commandLine_categories(t *testing.T) {
	cli, out := setup(t, "")
	require.NoError(t, cli.run([]string{"talanta", "categories"}))

	var cats []intelligence.Category
	require.NoError(t, json.Unmarshal(out.Bytes(), &cats))
	assert.Equal(t, intelligence.Default.All(), cats)
}

func Test_commandLine_cards(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		cli, out := setup(t, payload)
		require.NoError(t, cli.run([]string{"talanta", "cards", "-file", "-"}))

		var d dashboard.Dashboard
		require.NoError(t, json.Unmarshal(out.Bytes(), &d))
		require.Len(t, d.Cards, intelligence.Default.Len())
		assert.Equal(t, intelligence.Linguistic, d.Cards[0].ID)
		assert.Equal(t, rating.Excellent, d.Cards[0].Level)
		assert.Equal(t, 4, d.Overall.TotalRecords)
		if assert.Len(t, d.Unmatched, 1) {
			assert.Equal(t, "Telepathy", d.Unmatched[0].Name)
		}
	})

	t.Run("hide empty", func(t *testing.T) {
		cli, out := setup(t, payload)
		require.NoError(t, cli.run([]string{"talanta", "cards", "-file", "-", "-hide-empty"}))

		var d dashboard.Dashboard
		require.NoError(t, json.Unmarshal(out.Bytes(), &d))
		assert.Len(t, d.Cards, 1)
	})

	t.Run("empty stdin", func(t *testing.T) {
		cli, out := setup(t, "")
		require.NoError(t, cli.run([]string{"talanta", "cards", "-file", "-"}))

		var d dashboard.Dashboard
		require.NoError(t, json.Unmarshal(out.Bytes(), &d))
		assert.Len(t, d.Cards, intelligence.Default.Len())
		assert.Equal(t, dashboard.NoDataPeriodLabel, d.Overall.FilteredPeriodLabel)
		assert.NotNil(t, d.Unmatched)
	})

	t.Run("indented on terminals", func(t *testing.T) {
		cli, out := setup(t, payload)
		isTerminalFunc = func() bool { return true }
		require.NoError(t, cli.run([]string{"talanta", "cards", "-file", "-"}))
		assert.True(t, strings.HasPrefix(out.String(), "{\n  "), out.String())
	})
}

func Test_commandLine_pie(t *testing.T) {
	cli, out := setup(t, payload)
	require.NoError(t, cli.run([]string{"talanta", "pie", "-file", "-", "-min", "10"}))

	var sectors []chart.Sector
	require.NoError(t, json.Unmarshal(out.Bytes(), &sectors))
	require.Len(t, sectors, intelligence.Default.Len())

	var sum float64
	for _, s := range sectors {
		assert.GreaterOrEqual(t, s.Angle(), 10*360/(360+10*float64(len(sectors)-1))-1e-9)
		sum += s.Angle()
	}
	assert.InDelta(t, 360, sum, 1e-9)
	assert.InDelta(t, 360, sectors[len(sectors)-1].EndAngle, 1e-9)
}

func Test_commandLine_filter(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }() // reset

	tests := []struct {
		id   string
		want filterOutput
	}{
		{id: "all", want: filterOutput{Filter: dashboard.Filters[0]}},
		{id: "current-year", want: filterOutput{Filter: dashboard.Filters[1], Params: dashboard.QueryParams{Year: 2025}, Query: "year=2025"}},
		{id: "Current-Month", want: filterOutput{Filter: dashboard.Filters[2], Params: dashboard.QueryParams{Year: 2025, Month: 6}, Query: "month=6&year=2025"}},
		{id: "last-week", want: filterOutput{Filter: dashboard.Filters[0]}},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			cli, out := setup(t, "")
			require.NoError(t, cli.run([]string{"talanta", "filter", "-id", tt.id}))

			var got filterOutput
			require.NoError(t, json.Unmarshal(out.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
