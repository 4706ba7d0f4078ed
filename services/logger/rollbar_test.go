package logsvc

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/talanta/core"
)

func newTestLogger(buf *bytes.Buffer) *RollbarLogger {
	return NewRollbarLogger(log.New(buf, "", 0), &core.Config{Env: "TEST", TestMode: true})
}

func TestRollbarLogger_prepare(t *testing.T) {
	l := newTestLogger(new(bytes.Buffer))
	err := errors.New("boom")

	tests := []struct {
		name string
		args []interface{}
		want []interface{}
	}{
		{name: "message only", want: []interface{}{"msg"}},
		{name: "error", args: []interface{}{err}, want: []interface{}{"msg", err}},
		{
			name: "extras merged",
			args: []interface{}{map[string]interface{}{"a": 1}, map[string]interface{}{"b": "x"}},
			want: []interface{}{"msg", map[string]interface{}{"a": 1, "b": "x"}},
		},
		{
			name: "other values",
			args: []interface{}{err, 42},
			want: []interface{}{"msg", err, map[string]interface{}{"arg": 42}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.prepare("msg", tt.args))
		})
	}
}

func TestRollbarLogger_print(t *testing.T) {
	buf := new(bytes.Buffer)
	l := newTestLogger(buf)

	l.Warn("unmatched category", map[string]interface{}{"name": "Telepathy"})
	l.Info("started")

	out := buf.String()
	for _, want := range []string{"unmatched category\n", "map[name:Telepathy]\n", "started\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
}
