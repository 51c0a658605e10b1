package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Repl.Prompt != "=> " {
		t.Errorf("Repl.Prompt = %q, want %q", cfg.Repl.Prompt, "=> ")
	}
	if cfg.Repl.Banner != "amp" {
		t.Errorf("Repl.Banner = %q, want amp", cfg.Repl.Banner)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.File != "" {
		t.Errorf("Log.File = %q, want empty", cfg.Log.File)
	}
	if cfg.Output.Style != StyleLitter {
		t.Errorf("Output.Style = %q, want %q", cfg.Output.Style, StyleLitter)
	}
}

func TestConfig_applyDefaultsKeepsValues(t *testing.T) {
	cfg := &Config{
		Repl:   ReplConfig{Prompt: "> ", Banner: "hello"},
		Log:    LogConfig{Level: "debug"},
		Output: OutputConfig{Style: StyleCompact},
	}
	cfg.applyDefaults()

	if cfg.Repl.Prompt != "> " || cfg.Repl.Banner != "hello" {
		t.Errorf("Repl = %+v, values were overwritten", cfg.Repl)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Output.Style != StyleCompact {
		t.Errorf("Output.Style = %q, want compact", cfg.Output.Style)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, false},
		{"upper case level", func(c *Config) { c.Log.Level = "WARN" }, false},
		{"compact style", func(c *Config) { c.Output.Style = StyleCompact }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"unknown style", func(c *Config) { c.Output.Style = "json" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		content   string
		wantErr   bool
		wantLevel string
		wantStyle string
	}{
		{
			name: "toml",
			file: "amp.toml",
			content: `
[repl]
prompt = ">> "

[log]
level = "debug"

[output]
style = "compact"
`,
			wantLevel: "debug",
			wantStyle: StyleCompact,
		},
		{
			name: "yaml",
			file: "amp.yaml",
			content: `
log:
  level: warn
output:
  style: litter
`,
			wantLevel: "warn",
			wantStyle: StyleLitter,
		},
		{
			name:      "empty yml gets defaults",
			file:      "amp.yml",
			content:   "",
			wantLevel: "info",
			wantStyle: StyleLitter,
		},
		{
			name:    "malformed toml",
			file:    "amp.toml",
			content: "[repl\nprompt = 1",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			file:    "amp.yaml",
			content: "log: [unclosed",
			wantErr: true,
		},
		{
			name:    "invalid style",
			file:    "amp.toml",
			content: "[output]\nstyle = \"xml\"\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if cfg.Log.Level != tt.wantLevel {
				t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, tt.wantLevel)
			}
			if cfg.Output.Style != tt.wantStyle {
				t.Errorf("Output.Style = %q, want %q", cfg.Output.Style, tt.wantStyle)
			}
			if cfg.Repl.Prompt == "" {
				t.Error("Repl.Prompt is empty after defaults")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() of a missing file succeeded")
	}
}

func TestResolve(t *testing.T) {
	envPath := writeFile(t, "env.toml", "")

	t.Run("explicit wins", func(t *testing.T) {
		t.Setenv(EnvConfig, envPath)
		if got := Resolve("/explicit.toml"); got != "/explicit.toml" {
			t.Errorf("Resolve() = %q", got)
		}
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(EnvConfig, envPath)
		if got := Resolve(""); got != envPath {
			t.Errorf("Resolve() = %q, want %q", got, envPath)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv(EnvConfig, "")
		t.Setenv("HOME", t.TempDir())
		chdir(t, t.TempDir())

		if got := Resolve(""); got != "" {
			t.Errorf("Resolve() = %q, want empty", got)
		}
	})
}

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Output.Style != StyleLitter {
		t.Errorf("Output.Style = %q", cfg.Output.Style)
	}
}
