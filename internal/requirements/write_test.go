package requirements

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHeader_namesGenerator(t *testing.T) {
	h := Header("tools/pinning/current")
	if !strings.Contains(h, "tools/pinning/current") {
		t.Errorf("header should name the generator path:\n%s", h)
	}
	for _, line := range strings.Split(strings.TrimRight(h, "\n"), "\n") {
		if !strings.HasPrefix(line, "#") {
			t.Errorf("header line is not a comment: %q", line)
		}
	}
	if !strings.HasSuffix(h, "\n") {
		t.Error("header should end with a newline")
	}
}

func TestRender_headerThenVerbatimLines(t *testing.T) {
	line := `cffi==1.15.1 ; platform_python_implementation != "PyPy"`
	reqs, err := Parse([]byte("requests==2.31.0\n" + line + "\n"))
	if err != nil {
		t.Fatal(err)
	}

	out := Render(Header("tools/pinning/current"), reqs)
	if !bytes.HasPrefix(out, []byte("#")) {
		t.Error("rendered file should start with the header comment")
	}
	body := string(out)
	if !strings.Contains(body, "requests==2.31.0\n") {
		t.Error("missing requests line")
	}
	if !strings.Contains(body, line+"\n") {
		t.Error("marker line should be written verbatim")
	}
}

func TestRender_deterministic(t *testing.T) {
	reqs, err := Parse([]byte("requests==2.31.0\nacme==2.7.4\n"))
	if err != nil {
		t.Fatal(err)
	}
	h := Header("tools/pinning/current")
	if !bytes.Equal(Render(h, reqs), Render(h, reqs)) {
		t.Error("render should be byte-identical across calls")
	}
}

func TestSaveAndLoad_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	reqs, err := Parse([]byte("requests==2.31.0\nzope-interface==6.0\n"))
	if err != nil {
		t.Fatal(err)
	}

	if err := Save(path, Header("tools/pinning/current"), reqs); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal("file should exist after save")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d requirements, want 2 (header must be skipped)", len(loaded))
	}
	if loaded[0].Name != "requests" || loaded[1].Name != "zope-interface" {
		t.Errorf("round trip order changed: %v", loaded)
	}
}
