package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workflow.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFromPath(t *testing.T) {
	path := writeConfig(t, `
confirmations: false
cell_width: 4
link_kind: composition
font: mono
export_padding: 8
`)
	cfg, got, err := LoadConfigFromPath(path)
	if err != nil {
		t.Fatalf("LoadConfigFromPath: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}
	if cfg.Confirmations {
		t.Error("confirmations should be false")
	}
	if cfg.CellWidth != 4 {
		t.Errorf("cell_width = %v, want 4", cfg.CellWidth)
	}
	if cfg.CellHeight != 10 {
		t.Errorf("cell_height = %v, want default 10", cfg.CellHeight)
	}
	if cfg.defaultLinkKind() != Composition {
		t.Errorf("link kind = %s, want Composition", cfg.defaultLinkKind())
	}
	if cfg.ExportPadding != 8 {
		t.Errorf("export_padding = %d, want 8", cfg.ExportPadding)
	}
	if len(cfg.fontData()) == 0 {
		t.Error("no font data")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "cell_width: [", "parse config"},
		{"bad link kind", "link_kind: dependency", "unknown link_kind"},
		{"bad font", "font: comic", "unknown font"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadConfigFromPath(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}

	if _, _, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestConfigNormalize(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	cfg.CellWidth = -1
	cfg.ExportPadding = -5
	cfg.SaveDirectory = "~/diagrams"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.CellWidth != 5 {
		t.Errorf("cell_width = %v, want default 5", cfg.CellWidth)
	}
	if cfg.ExportPadding != 0 {
		t.Errorf("export_padding = %d, want 0", cfg.ExportPadding)
	}
	if want := filepath.Join(home, "diagrams"); cfg.SaveDirectory != want {
		t.Errorf("save_directory = %q, want %q", cfg.SaveDirectory, want)
	}
	if got := cfg.GetSavePath("out.png"); got != filepath.Join(home, "diagrams", "out.png") {
		t.Errorf("GetSavePath = %q", got)
	}
	if _, err := os.Stat(cfg.SaveDirectory); err != nil {
		t.Errorf("save directory not created: %v", err)
	}
}

func TestFindConfigPathFromEnv(t *testing.T) {
	path := writeConfig(t, "font: regular")
	t.Setenv("WORKFLOW_CONFIG", path)
	if got := FindConfigPath(); got != path {
		t.Errorf("FindConfigPath = %q, want %q", got, path)
	}
	cfg, got, err := loadConfig()
	if err != nil || got != path || cfg == nil {
		t.Errorf("loadConfig = %v, %q, %v", cfg, got, err)
	}
}
