package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	var c Config
	c.Gemini.APIKeys = []string{"key-1"}
	c.OpenAI.APIKey = "key-2"
	c.Paths.Input = "data/input"
	c.Paths.Output = "data/output"
	return c
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing gemini keys",
			mutate:  func(c *Config) { c.Gemini.APIKeys = nil },
			wantErr: true,
		},
		{
			name:    "missing openai key",
			mutate:  func(c *Config) { c.OpenAI.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "missing input path",
			mutate:  func(c *Config) { c.Paths.Input = "" },
			wantErr: true,
		},
		{
			name:    "unsupported voice",
			mutate:  func(c *Config) { c.OpenAI.Voice = "bariton" },
			wantErr: true,
		},
		{
			name:    "negative frame rate",
			mutate:  func(c *Config) { c.Video.FrameRate = -1 },
			wantErr: true,
		},
		{
			name:    "negative max concurrent",
			mutate:  func(c *Config) { c.Performance.MaxConcurrent = -1 },
			wantErr: true,
		},
		{
			name:   "supported voice",
			mutate: func(c *Config) { c.OpenAI.Voice = "shimmer" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.OpenAI.Voice != "alloy" {
		t.Errorf("Voice default = %v, want alloy", cfg.OpenAI.Voice)
	}
	if cfg.OpenAI.TTSModel != "tts-1" {
		t.Errorf("TTSModel default = %v, want tts-1", cfg.OpenAI.TTSModel)
	}
	if cfg.Video.FrameRate != 24 {
		t.Errorf("FrameRate default = %v, want 24", cfg.Video.FrameRate)
	}
	if cfg.Video.OutputName != "presentation.mp4" {
		t.Errorf("OutputName default = %v", cfg.Video.OutputName)
	}
	if cfg.Slides.MaxSlides != 5 {
		t.Errorf("MaxSlides default = %v, want 5", cfg.Slides.MaxSlides)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent default = %v, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
gemini:
  model: "gemini-2.5-flash"
  api_keys: ["k1", "k2"]

openai:
  api_key: "sk-test"
  voice: "nova"

video:
  frame_rate: 30

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "info"
  format: "text"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Gemini.APIKeys) != 2 {
		t.Errorf("APIKeys = %v, want 2 keys", cfg.Gemini.APIKeys)
	}
	if cfg.OpenAI.Voice != "nova" {
		t.Errorf("Voice = %v, want nova", cfg.OpenAI.Voice)
	}
	if cfg.Video.FrameRate != 30 {
		t.Errorf("FrameRate = %v, want 30", cfg.Video.FrameRate)
	}
	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want data/input", cfg.Paths.Input)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
