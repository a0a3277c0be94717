package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestStatusAndDataAreSeparated(t *testing.T) {
	color.NoColor = true
	var status, data bytes.Buffer
	u := NewWithWriters(&status, &data)

	u.Infof("wrote %d lines", 4)
	u.Success("done")
	u.Warningf("careful %s", "now")
	u.Line("line-by-line: Moses")
	u.Linef("Usage: %s", "names-demo")

	wantStatus := []string{"[INFO] wrote 4 lines", "[✓] done", "[WARNING] careful now"}
	for _, want := range wantStatus {
		if !strings.Contains(status.String(), want) {
			t.Errorf("status output missing %q, got %q", want, status.String())
		}
	}
	if strings.Contains(status.String(), "Moses") {
		t.Error("data line leaked into status output")
	}

	wantData := "line-by-line: Moses\nUsage: names-demo\n"
	if data.String() != wantData {
		t.Errorf("data output = %q, want %q", data.String(), wantData)
	}
}

func TestHeader(t *testing.T) {
	color.NoColor = true
	var status bytes.Buffer
	NewWithWriters(&status, &bytes.Buffer{}).Header("Basics")

	if !strings.Contains(status.String(), "  Basics\n") {
		t.Errorf("Header() output = %q, want title line", status.String())
	}
	if !strings.Contains(status.String(), strings.Repeat("=", 70)) {
		t.Error("Header() output missing border")
	}
}

func TestPromptSearchNonInteractive(t *testing.T) {
	u := NewWithWriters(&bytes.Buffer{}, &bytes.Buffer{})
	u.SetNonInteractive(true)

	if _, _, err := u.PromptSearch("text-data/names.txt"); err == nil {
		t.Error("PromptSearch() error = nil, want error in non-interactive mode")
	}
	if !u.IsNonInteractive() {
		t.Error("IsNonInteractive() = false, want true")
	}
}
