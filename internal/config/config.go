package config

import "fmt"

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Slides      SlidesConfig      `yaml:"slides"`
	Video       VideoConfig       `yaml:"video"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type OpenAIConfig struct {
	APIKey   string `yaml:"api_key"`
	TTSModel string `yaml:"tts_model"`
	Voice    string `yaml:"voice"`
}

type SlidesConfig struct {
	MaxSlides  int  `yaml:"max_slides"`
	IntroOutro bool `yaml:"intro_outro"`
}

type VideoConfig struct {
	FrameRate  int    `yaml:"frame_rate"`
	OutputName string `yaml:"output_name"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// voices supported by the tts-1 speech endpoint
var supportedVoices = map[string]bool{
	"alloy":   true,
	"echo":    true,
	"fable":   true,
	"onyx":    true,
	"nova":    true,
	"shimmer": true,
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.OpenAI.Voice == "" {
		c.OpenAI.Voice = "alloy"
	}
	if !supportedVoices[c.OpenAI.Voice] {
		return fmt.Errorf("openai.voice %q is not supported (alloy, echo, fable, onyx, nova, shimmer)", c.OpenAI.Voice)
	}
	if c.OpenAI.TTSModel == "" {
		c.OpenAI.TTSModel = "tts-1"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Slides.MaxSlides == 0 {
		c.Slides.MaxSlides = 5
	}
	if c.Video.FrameRate == 0 {
		c.Video.FrameRate = 24
	}
	if c.Video.FrameRate < 0 {
		return fmt.Errorf("video.frame_rate must be positive")
	}
	if c.Video.OutputName == "" {
		c.Video.OutputName = "presentation.mp4"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be positive")
	}

	return nil
}
