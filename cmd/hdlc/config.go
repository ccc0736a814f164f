package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// config holds the project-level defaults an optional hdlc.yaml or
// hdlc.json can override: default output directory and whether to
// emit the Verilator harness. Flags passed to the verilog subcommand
// take precedence over these.
type config struct {
	OutDir      string
	EmitHarness bool
}

func defaultConfig() config {
	return config{
		OutDir:      ".",
		EmitHarness: false,
	}
}

// loadConfig reads hdlc.yaml/hdlc.json from the current directory if
// present, falling back to defaultConfig's values for anything it
// doesn't set. A missing config file is not an error - hdlc runs fine
// on flags alone, the way asm and lang/yld do.
func loadConfig() config {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigName("hdlc")
	v.AddConfigPath(".")
	v.SetDefault("outdir", cfg.OutDir)
	v.SetDefault("emitharness", cfg.EmitHarness)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			fmt.Fprintf(os.Stderr, "hdlc: warning: reading config: %v\n", err)
		}
		return cfg
	}

	cfg.OutDir = v.GetString("outdir")
	cfg.EmitHarness = v.GetBool("emitharness")
	return cfg
}
