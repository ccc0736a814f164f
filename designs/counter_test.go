package designs

import (
	"strings"
	"testing"

	"github.com/gmofishsauce/wut4/verilog"
)

func TestCounterEmitsResetAndFinish(t *testing.T) {
	nl := Counter()
	var sb strings.Builder
	if err := verilog.Emit(&sb, "counter", nl); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	got := sb.String()
	for _, want := range []string{"reg [3:0]", "if (reset) begin", "$finish", "$write"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}
