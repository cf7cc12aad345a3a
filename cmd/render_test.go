package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, snapshot string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".trendview.yml")
	body := fmt.Sprintf("snapshot: %q\nport: 8080\ndefault_language: go\n", snapshot)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runRenderCmd(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	out := filepath.Join(t.TempDir(), "fragment.html")
	rootCmd.SetArgs(append([]string{"--config", cfgPath, "render", "--out", out}, args...))
	err := rootCmd.Execute()
	data, readErr := os.ReadFile(out)
	if readErr != nil {
		t.Fatalf("reading output: %v", readErr)
	}
	return string(data), err
}

func TestRenderCommand(t *testing.T) {
	snapshot, err := filepath.Abs(filepath.Join("..", "testdata", "latest.json"))
	if err != nil {
		t.Fatal(err)
	}
	cfgPath := writeConfig(t, snapshot)

	out, err := runRenderCmd(t, cfgPath, "--section", "github", "--lang", "", "--source", "all")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "https://github.com/golang/go") {
		t.Errorf("expected the default_language list, got %s", out)
	}

	out, err = runRenderCmd(t, cfgPath, "--section", "rss", "--lang", "", "--source", "InfoQ")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Count(out, `<div class="card">`) != 1 || strings.Contains(out, "Unknown") {
		t.Errorf("unexpected rss fragment: %s", out)
	}
}

func TestRenderCommandLoadFailure(t *testing.T) {
	cfgPath := writeConfig(t, filepath.Join(t.TempDir(), "missing.json"))

	out, err := runRenderCmd(t, cfgPath, "--section", "github", "--lang", "", "--source", "all")
	if err == nil {
		t.Fatal("expected an error for a missing snapshot")
	}
	if !strings.Contains(out, "Failed to load data") {
		t.Errorf("expected the failure fragment, got %s", out)
	}
}
