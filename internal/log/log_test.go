package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Infof("соединение %s закрыто", "127.0.0.1:80")
	Infof("без аргументов")
	Errorf("ошибка %d", 42)
	Error(errors.New("сокет закрыт"))

	out := buf.String()
	for _, want := range []string{
		"INFO: ", "соединение 127.0.0.1:80 закрыто",
		"без аргументов",
		"ERROR: ", "ошибка 42",
		"сокет закрыт",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q does not contain %q", out, want)
		}
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	if err := New(path); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() {
		if err := New(""); err != nil {
			t.Errorf("New(\"\") error = %v", err)
		}
	}()

	Infof("в файл")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// между префиксом и сообщением стоят дата и время
	for _, want := range []string{"INFO: ", "в файл"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("log file %q does not contain %q", content, want)
		}
	}
}

func TestNew_ClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()

	if err := New(filepath.Join(dir, "first.log")); err != nil {
		t.Fatal(err)
	}
	first := logFile

	if err := New(filepath.Join(dir, "second.log")); err != nil {
		t.Fatal(err)
	}
	if _, err := first.WriteString("x"); !errors.Is(err, os.ErrClosed) {
		t.Errorf("expected first file to be closed, got %v", err)
	}
	second := logFile

	if err := New(""); err != nil {
		t.Fatal(err)
	}
	if logFile != nil {
		t.Error("expected no open log file after switching to stdout")
	}
	if _, err := second.WriteString("x"); !errors.Is(err, os.ErrClosed) {
		t.Errorf("expected second file to be closed, got %v", err)
	}
}

func TestNew_BadPath(t *testing.T) {
	if err := New(filepath.Join(t.TempDir(), "missing", "server.log")); err == nil {
		t.Error("expected error for missing directory")
	}
}
