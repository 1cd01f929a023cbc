package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	md := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(md, []byte("# Title\n\n- [x] done\n- [link](/x)"), 0644))
	css := filepath.Join(dir, "doc.css")
	require.NoError(t, os.WriteFile(css, []byte("h1 { color: navy }"), 0644))
	conf := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("bulletAlignment: start\n"), 0644))
	dot := filepath.Join(dir, "doc.dot")
	//
	var out bytes.Buffer
	err := run(&out, md, flags{config: conf, styles: css, dot: dot})
	require.NoError(t, err)
	s := out.String()
	t.Logf("output =\n%s", s)
	if !strings.Contains(s, "#column") || !strings.Contains(s, "1 interaction handles") {
		t.Errorf("unexpected output")
	}
	b, err := os.ReadFile(dot)
	require.NoError(t, err)
	if !strings.HasPrefix(string(b), "digraph") {
		t.Errorf("expected DOT output")
	}
	if err := run(&out, filepath.Join(dir, "missing.md"), flags{}); err == nil {
		t.Errorf("expected error for missing file")
	}
}
