package config

import "fmt"

type Config struct {
	LLM     LLMConfig     `yaml:"llm"`
	Speech  SpeechConfig  `yaml:"speech"`
	Extract ExtractConfig `yaml:"extract"`
	Remote  RemoteConfig  `yaml:"remote"`
	Paths   PathsConfig   `yaml:"paths"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

type LLMConfig struct {
	Provider     string `yaml:"provider"`
	Model        string `yaml:"model"`
	APIKey       string `yaml:"api_key"`
	BaseURL      string `yaml:"base_url"`
	MaxTokens    int    `yaml:"max_tokens"`
	ChunkWords   int    `yaml:"chunk_words"`
	CustomPrompt string `yaml:"custom_prompt"`
}

type SpeechConfig struct {
	BinaryPath    string   `yaml:"binary_path"`
	FFmpegPath    string   `yaml:"ffmpeg_path"`
	Language      string   `yaml:"language"`
	Rate          int      `yaml:"rate"`
	Volume        *float64 `yaml:"volume"`
	VoiceHint     string   `yaml:"voice_hint"`
	StripMarkdown *bool    `yaml:"strip_markdown"`
}

type ExtractConfig struct {
	PdftotextFallback bool   `yaml:"pdftotext_fallback"`
	PdftotextPath     string `yaml:"pdftotext_path"`
}

type RemoteConfig struct {
	DownloadPath    string `yaml:"download_path"`
	DownloadDir     string `yaml:"download_dir"`
	FeedLimit       int    `yaml:"feed_limit"`
	RemoveDownloads bool   `yaml:"remove_downloads"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
}

type OutputConfig struct {
	Docx bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	// Validate on an empty config only fills defaults.
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderOpenAI
	}
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.Model == "" {
			c.LLM.Model = "gpt-4"
		}
	case ProviderGemini:
		if c.LLM.Model == "" {
			c.LLM.Model = "gemini-2.5-flash"
		}
	default:
		return fmt.Errorf("llm.provider %q is not supported (use %q or %q)", c.LLM.Provider, ProviderOpenAI, ProviderGemini)
	}
	if c.LLM.MaxTokens < 0 {
		return fmt.Errorf("llm.max_tokens must not be negative")
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 1000
	}
	if c.LLM.ChunkWords < 0 {
		return fmt.Errorf("llm.chunk_words must not be negative")
	}
	if c.LLM.ChunkWords == 0 {
		c.LLM.ChunkWords = 3000
	}

	if c.Speech.BinaryPath == "" {
		c.Speech.BinaryPath = "espeak-ng"
	}
	if c.Speech.FFmpegPath == "" {
		c.Speech.FFmpegPath = "ffmpeg"
	}
	if c.Speech.Language == "" {
		c.Speech.Language = "en"
	}
	if c.Speech.Rate == 0 {
		c.Speech.Rate = 150
	}
	if c.Speech.Volume == nil {
		volume := 1.0
		c.Speech.Volume = &volume
	}
	if v := *c.Speech.Volume; v < 0 || v > 1 {
		return fmt.Errorf("speech.volume must be within 0.0-1.0, got %v", v)
	}
	if c.Speech.VoiceHint == "" {
		c.Speech.VoiceHint = "female"
	}
	if c.Speech.StripMarkdown == nil {
		strip := true
		c.Speech.StripMarkdown = &strip
	}

	if c.Extract.PdftotextPath == "" {
		c.Extract.PdftotextPath = "pdftotext"
	}

	if c.Remote.DownloadPath == "" {
		c.Remote.DownloadPath = "downloaded_paper.pdf"
	}
	if c.Remote.DownloadDir == "" {
		c.Remote.DownloadDir = "."
	}
	if c.Remote.FeedLimit < 0 {
		return fmt.Errorf("remote.feed_limit must not be negative")
	}
	if c.Remote.FeedLimit == 0 {
		c.Remote.FeedLimit = 10
	}

	if c.Paths.Output == "" {
		c.Paths.Output = "."
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	return nil
}

// VolumeLevel returns the configured volume, 1.0 when unset. 0 is silence.
func (s SpeechConfig) VolumeLevel() float64 {
	if s.Volume == nil {
		return 1.0
	}
	return *s.Volume
}

// StripMarkdownEnabled reports whether speech input is reduced to plain text.
func (s SpeechConfig) StripMarkdownEnabled() bool {
	return s.StripMarkdown == nil || *s.StripMarkdown
}
