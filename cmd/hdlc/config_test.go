package main

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.OutDir != "." {
		t.Errorf("OutDir = %q, want %q", cfg.OutDir, ".")
	}
	if cfg.EmitHarness {
		t.Errorf("EmitHarness = true, want false")
	}
}
