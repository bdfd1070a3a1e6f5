package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLocal(t *testing.T) {
	dir := t.TempDir()
	body := "include: \"**/*.md\"\nmax_bytes: 2048\npad: true\n"
	if err := os.WriteFile(filepath.Join(dir, ".nej.yml"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Include == nil || *cfg.Include != "**/*.md" {
		t.Fatalf("include not parsed: %+v", cfg.Include)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 2048 {
		t.Fatalf("max_bytes not parsed: %+v", cfg.MaxBytes)
	}
	if cfg.Pad == nil || !*cfg.Pad {
		t.Fatalf("pad not parsed: %+v", cfg.Pad)
	}
	if cfg.Exclude != nil {
		t.Fatalf("absent key must stay nil, got %q", *cfg.Exclude)
	}
}

func TestLoadLocalMissing(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatal("expected error when no config present")
	}
}

func TestLoadLocalNamePrecedence(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".nej.yml"), []byte("pad: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nej.yml"), []byte("pad: false\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pad == nil || !*cfg.Pad {
		t.Fatal("dotfile variant must win")
	}
}

func TestLoadFileBadYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(p, []byte(":\n\t- nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected YAML parse error")
	}
}
