// Package config holds the tool's defaults and the optional user config
// file. A missing file means defaults; a broken file is reported once and
// defaults are used.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/asaskevich/govalidator"
	"gopkg.in/yaml.v3"
)

// Config mirrors ~/.vocseal/config.yaml. Every field is optional.
type Config struct {
	JavaPath       string   `yaml:"java_path"`
	JavaCandidates []string `yaml:"java_candidates"`
	JarPath        string   `yaml:"jar_path"`
	Keystore       string   `yaml:"keystore"`
	FallbackAlias  string   `yaml:"fallback_alias"`
	OwnerPassword  string   `yaml:"owner_password"`
	OutputSuffix   string   `yaml:"output_suffix"`
	SignatureImage string   `yaml:"signature_image"`
	TSAURL         string   `yaml:"tsa_url" valid:"url,optional"`
	CertQuery      []string `yaml:"cert_query"`
}

// Dir returns the per-user application data directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".vocseal"), nil
}

// DefaultPath returns the expected config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the built-in configuration for the running OS.
func Default() *Config {
	c := &Config{
		OutputSuffix:  "_signed",
		FallbackAlias: "",
	}
	switch runtime.GOOS {
	case "windows":
		c.JavaCandidates = []string{
			`C:\tools\temurin-jre\jdk-17.0.17+10-jre\bin\java.exe`,
			`C:\Program Files\Java\jre-17\bin\java.exe`,
			`C:\Program Files\Java\jre1.8.0_371\bin\java.exe`,
			"java",
		}
		c.JarPath = `C:\tools\JSignPdf\JSignPdf.jar`
		c.SignatureImage = `C:\tools\img\adobe_style.png`
	case "darwin":
		c.JavaCandidates = []string{
			"/Library/Java/JavaVirtualMachines/temurin-17.jre/Contents/Home/bin/java",
			"/usr/bin/java",
			"java",
		}
		c.JarPath = "/Applications/JSignPdf/JSignPdf.jar"
	default:
		c.JavaCandidates = []string{
			"/usr/lib/jvm/java-17-openjdk-amd64/bin/java",
			"/usr/bin/java",
			"java",
		}
		c.JarPath = "/opt/jsignpdf/JSignPdf.jar"
	}
	return c
}

// Load reads the config file at path over the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Validate checks field formats (currently the TSA URL).
func (c *Config) Validate() error {
	if _, err := govalidator.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// FindJava returns the configured Java executable, the first existing
// candidate, or plain "java" for PATH lookup.
func (c *Config) FindJava() string {
	if c.JavaPath != "" {
		return c.JavaPath
	}
	for _, candidate := range c.JavaCandidates {
		if candidate == "java" {
			return candidate
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "java"
}
