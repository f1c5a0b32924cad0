package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woby-dev/woby/internal/config"
	werrors "github.com/woby-dev/woby/internal/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderCommand(t *testing.T) {
	path := writeConfig(t, "log:\n  level: error\n")
	out, err := run(t, "render", "--config", path)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>woby</title>",
		`<p class="memo">0abc</p>`,
		`<span class="theme">dark</span>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %s", want)
		}
	}
	if strings.Contains(out, "<!--") {
		t.Error("output should not contain range markers")
	}
}

func TestRenderPretty(t *testing.T) {
	path := writeConfig(t, "log:\n  level: error\n")
	out, err := run(t, "render", "--config", path, "--pretty")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.Contains(out, "\n  <section") && !strings.Contains(out, "\n    <section") {
		t.Errorf("pretty output should indent sections:\n%s", out)
	}
}

func TestInvalidConfig(t *testing.T) {
	path := writeConfig(t, "dev:\n  port: -5\n")
	_, err := run(t, "render", "--config", path)
	if !errors.Is(err, config.ErrConfigInvalid) {
		t.Fatalf("error = %v, want %s", err, werrors.CodeConfigInvalid)
	}

	var buf bytes.Buffer
	werrors.DisableColors()
	defer werrors.EnableColors()
	printError(&buf, err)
	if !strings.Contains(buf.String(), werrors.CodeConfigInvalid) {
		t.Errorf("printed error should carry the code:\n%s", buf.String())
	}
}

func TestLogLevelFlag(t *testing.T) {
	path := writeConfig(t, "")
	_, err := run(t, "render", "--config", path, "--log-level", "loud")
	if !errors.Is(err, config.ErrConfigInvalid) {
		t.Errorf("error = %v, want invalid level", err)
	}
}

func TestExportRequiresBucket(t *testing.T) {
	path := writeConfig(t, "log:\n  level: error\n")
	_, err := run(t, "export", "--config", path)
	if err == nil || !strings.Contains(err.Error(), "bucket") {
		t.Errorf("error = %v, want missing bucket", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}

	out, err = run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Go version:") {
		t.Errorf("version output = %q", out)
	}
}

func TestPrintPlainError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	if buf.String() != "Error: boom\n" {
		t.Errorf("printed %q", buf.String())
	}
}
