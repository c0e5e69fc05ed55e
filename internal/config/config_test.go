package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`{"Port":8080,"RootDirectory":"./www","ErrorDirectory":"./errors"}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.Port() != 8080 {
		t.Errorf("expected port 8080, got %d", c.Port())
	}
	if c.RootDirectory() != "./www" {
		t.Errorf("expected root './www', got '%s'", c.RootDirectory())
	}
	if c.ErrorDirectory() != "./errors" {
		t.Errorf("expected error dir './errors', got '%s'", c.ErrorDirectory())
	}
	if c.MaxConnections() != 0 {
		t.Errorf("expected unbounded connections, got %d", c.MaxConnections())
	}
	if c.ServerLog() != "" {
		t.Errorf("expected empty server log, got '%s'", c.ServerLog())
	}
}

func TestParse_Optional(t *testing.T) {
	c, err := Parse([]byte(`{"Port":1,"RootDirectory":"r","ErrorDirectory":"e","MaxConnections":4,"ServerLog":"server.log"}`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if c.MaxConnections() != 4 {
		t.Errorf("expected 4 connections, got %d", c.MaxConnections())
	}
	if c.ServerLog() != "server.log" {
		t.Errorf("expected 'server.log', got '%s'", c.ServerLog())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"no root", `{"Port":80,"ErrorDirectory":"e"}`, ErrNoRootDir},
		{"no error dir", `{"Port":80,"RootDirectory":"r"}`, ErrNoErrorDir},
		{"negative port", `{"Port":-1,"RootDirectory":"r","ErrorDirectory":"e"}`, ErrInvalidPort},
		{"big port", `{"Port":70000,"RootDirectory":"r","ErrorDirectory":"e"}`, ErrInvalidPort},
		{"negative limit", `{"Port":80,"RootDirectory":"r","ErrorDirectory":"e","MaxConnections":-2}`, ErrInvalidMaxConns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"Port":`)); err == nil {
		t.Error("expected error for truncated document")
	}
	if _, err := Parse([]byte(`{"Port":"8080"}`)); err == nil {
		t.Error("expected error for string port")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `{"Port":8080,"RootDirectory":"./www","ErrorDirectory":"./errors"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Port() != 8080 {
		t.Errorf("expected port 8080, got %d", c.Port())
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestWithMaxConnections(t *testing.T) {
	c, err := New(0, "r", "e")
	if err != nil {
		t.Fatal(err)
	}

	limited, err := c.WithMaxConnections(3)
	if err != nil {
		t.Fatal(err)
	}
	if limited.MaxConnections() != 3 {
		t.Errorf("expected 3, got %d", limited.MaxConnections())
	}
	if c.MaxConnections() != 0 {
		t.Errorf("source config changed: %d", c.MaxConnections())
	}
	if _, err := c.WithMaxConnections(-1); !errors.Is(err, ErrInvalidMaxConns) {
		t.Errorf("expected ErrInvalidMaxConns, got %v", err)
	}
}
