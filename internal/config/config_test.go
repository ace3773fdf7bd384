package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("a missing config file is not an error, got %v", err)
	}
	if cfg.OutputSuffix != "_signed" {
		t.Fatalf("default suffix=%q", cfg.OutputSuffix)
	}
	if cfg.JarPath == "" {
		t.Fatal("default jar path must be set")
	}
	if len(cfg.JavaCandidates) == 0 {
		t.Fatal("default java candidates must be set")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
jar_path: /opt/custom/JSignPdf.jar
fallback_alias: ACME Corp
owner_password: hunter2
tsa_url: https://tsa.example.com/rfc3161
cert_query: ["security", "find-identity"]
`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.JarPath != "/opt/custom/JSignPdf.jar" {
		t.Fatalf("jar_path=%q", cfg.JarPath)
	}
	if cfg.FallbackAlias != "ACME Corp" {
		t.Fatalf("fallback_alias=%q", cfg.FallbackAlias)
	}
	if cfg.OwnerPassword != "hunter2" {
		t.Fatalf("owner_password=%q", cfg.OwnerPassword)
	}
	if cfg.TSAURL != "https://tsa.example.com/rfc3161" {
		t.Fatalf("tsa_url=%q", cfg.TSAURL)
	}
	if len(cfg.CertQuery) != 2 || cfg.CertQuery[0] != "security" {
		t.Fatalf("cert_query=%v", cfg.CertQuery)
	}
	// Unset fields keep their defaults.
	if cfg.OutputSuffix != "_signed" {
		t.Fatalf("output_suffix=%q", cfg.OutputSuffix)
	}
}

func TestLoadBrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{{{ not yaml"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if cfg == nil || cfg.JarPath != Default().JarPath {
		t.Fatal("broken config must fall back to defaults")
	}
}

func TestLoadInvalidTSAURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tsa_url: 'not a url at all'"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if cfg.TSAURL != "" {
		t.Fatalf("invalid TSA URL must not survive, got %q", cfg.TSAURL)
	}
}

func TestFindJava(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "java17")
	if err := os.WriteFile(existing, []byte("#!/bin/sh\n"), 0700); err != nil {
		t.Fatal(err)
	}

	c := &Config{JavaPath: "/explicit/java"}
	if got := c.FindJava(); got != "/explicit/java" {
		t.Fatalf("explicit path ignored: %q", got)
	}

	c = &Config{JavaCandidates: []string{filepath.Join(dir, "missing"), existing, "java"}}
	if got := c.FindJava(); got != existing {
		t.Fatalf("FindJava=%q want %q", got, existing)
	}

	c = &Config{JavaCandidates: []string{filepath.Join(dir, "missing")}}
	if got := c.FindJava(); got != "java" {
		t.Fatalf("FindJava=%q want PATH fallback", got)
	}
}
