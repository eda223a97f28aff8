package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	if underSystemdService() {
		t.Skip("terminal handler disabled under systemd")
	}
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("halt", "pointer", 3)
	})
	if !strings.Contains(buf.String(), "msg=halt pointer=3") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("span.id-1"); got != "SPAN_ID_1" {
		t.Fatalf("got %q", got)
	}
}
