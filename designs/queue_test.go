package designs

import (
	"strings"
	"testing"

	"github.com/gmofishsauce/wut4/verilog"
)

func TestQueueEmitsEnqueueAndDequeueTrace(t *testing.T) {
	nl := Queue()
	var sb strings.Builder
	if err := verilog.Emit(&sb, "queue", nl); err != nil {
		t.Fatalf("emit: %v", err)
	}
	got := sb.String()
	if !strings.Contains(got, "Enqueued ") || !strings.Contains(got, "Dequeued ") {
		t.Errorf("expected both Enqueued and Dequeued writes, got:\n%s", got)
	}
}
