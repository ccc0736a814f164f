package netlist

import (
	"strconv"
	"strings"
)

// Mangle synthesizes a Verilog-legal, collision-free identifier for a
// net from its accumulated name hints, the way makeNetName in
// sim/tsp/emitUtils.go turns a KiCad net's driving pin into a
// C-compatible identifier: join what's known, sanitize it, and append
// a uniquing suffix - here the net id instead of a KiCad net code.
func Mangle(n *Net) string {
	var parts []string
	parts = append(parts, n.Hints.Prefix...)
	parts = append(parts, n.Hints.Root...)
	parts = append(parts, n.Hints.Suffix...)

	var sb strings.Builder
	wrote := false
	for _, p := range parts {
		clean := sanitize(p)
		if clean == "" {
			continue
		}
		if wrote {
			sb.WriteByte('_')
		}
		sb.WriteString(clean)
		wrote = true
	}
	if !wrote {
		sb.WriteString("v")
	}
	sb.WriteByte('_')
	sb.WriteString(strconv.Itoa(n.ID))
	return sb.String()
}

// sanitize replaces every byte outside [A-Za-z0-9_] with '_', and, if
// the result would start with a digit, prefixes it with '_' so the
// identifier stays Verilog-legal ([A-Za-z_][A-Za-z0-9_]*).
func sanitize(s string) string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	for i, c := range b {
		if !isIdentChar(c) {
			b[i] = '_'
		}
	}
	if b[0] >= '0' && b[0] <= '9' {
		return "_" + string(b)
	}
	return string(b)
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
