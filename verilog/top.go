package verilog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gmofishsauce/wut4/netlist"
)

// TopConfig controls EmitTop's auxiliary output; Harness selects
// whether a Verilator C++ wrapper and Makefile are written alongside
// the Verilog, matching the switch the `hdlc` frontend's config
// exposes - a full simulator build is an external collaborator's job,
// not the core's.
type TopConfig struct {
	Dir     string
	Harness bool
}

// EmitTop writes <dir>/<module>.v and, if cfg.Harness is set,
// <dir>/<module>.cpp and <dir>/Makefile, generated here from the same
// netlist the plain Emit path uses.
func EmitTop(module string, nl *netlist.Netlist, cfg TopConfig) error {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("verilog: creating output dir: %w", err)
	}

	vPath := filepath.Join(cfg.Dir, module+".v")
	vFile, err := os.Create(vPath)
	if err != nil {
		return fmt.Errorf("verilog: creating %s: %w", vPath, err)
	}
	defer vFile.Close()
	if err := Emit(vFile, module, nl); err != nil {
		return fmt.Errorf("verilog: emitting %s: %w", vPath, err)
	}

	if !cfg.Harness {
		return nil
	}
	if err := writeHarness(module, cfg.Dir); err != nil {
		return err
	}
	return writeMakefile(module, cfg.Dir)
}

func writeHarness(module, dir string) error {
	path := filepath.Join(dir, module+".cpp")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("verilog: creating %s: %w", path, err)
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, cppHarnessTemplate, module, module, module, module)
	return err
}

func writeMakefile(module, dir string) error {
	path := filepath.Join(dir, "Makefile")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("verilog: creating %s: %w", path, err)
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, makefileTemplate, module, module, module, module, module, module, module, module)
	return err
}

const cppHarnessTemplate = `// Minimal Verilator driver for %s.v - clocks the design and lets
// $finish/$display inside the model do the rest.
#include "V%s.h"
#include "verilated.h"

int main(int argc, char **argv) {
    Verilated::commandArgs(argc, argv);
    V%s *top = new V%s;
    top->reset = 1;
    for (int i = 0; i < 2; i++) {
        top->clock = 0; top->eval();
        top->clock = 1; top->eval();
    }
    top->reset = 0;
    while (!Verilated::gotFinish()) {
        top->clock = 0; top->eval();
        top->clock = 1; top->eval();
    }
    delete top;
    return 0;
}
`

const makefileTemplate = `VERILATOR ?= verilator

all: %s

%s: %s.v %s.cpp
	$(VERILATOR) --cc --exe --build %s.v %s.cpp -o %s
	./obj_dir/%s

.PHONY: all
`
