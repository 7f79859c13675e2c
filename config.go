package main

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"textCaptcha/captcha"
)

// Config is the operator configuration. Load order: defaults, YAML file,
// environment, command line flags.
type Config struct {
	Log     LogConfig     `yaml:"log" json:"log"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Captcha CaptchaConfig `yaml:"captcha" json:"captcha"`
}

type LogConfig struct {
	Level      string `yaml:"level" json:"level"`
	File       string `yaml:"file" json:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" json:"max_age_days"`
	Compress   bool   `yaml:"compress" json:"compress"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir" json:"dir"`
	Count  int    `yaml:"count" json:"count"`
	Inline bool   `yaml:"inline" json:"inline"` // embed the data URI in the JSON line
}

type CaptchaConfig struct {
	Alphabet   string  `yaml:"alphabet" json:"alphabet"`
	MinLength  int     `yaml:"min_length" json:"min_length"`
	MaxLength  int     `yaml:"max_length" json:"max_length"`
	Width      int     `yaml:"width" json:"width"`
	Height     int     `yaml:"height" json:"height"`
	FontSize   float64 `yaml:"font_size" json:"font_size"`
	FontFamily string  `yaml:"font_family" json:"font_family"`
	FontFile   string  `yaml:"font_file" json:"font_file"`
	LineWidth  float64 `yaml:"line_width" json:"line_width"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 7,
			MaxAgeDays: 14,
			Compress:   true,
		},
		Output: OutputConfig{
			Dir:   ".",
			Count: 1,
		},
		Captcha: CaptchaConfig{
			Alphabet:   captcha.DefaultAlphabet,
			MinLength:  captcha.DefaultMinLength,
			MaxLength:  captcha.DefaultMaxLength,
			FontSize:   captcha.DefaultFontSize,
			FontFamily: string(captcha.SansSerif),
			LineWidth:  captcha.DefaultLineWidth,
		},
	}
}

// LoadConfig reads path (optional) over the defaults and applies environment
// overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

// applyEnv reads:
// - LOG_LEVEL, LOG_FILE, LOG_MAX_SIZE_MB, LOG_MAX_BACKUPS, LOG_MAX_DAYS, LOG_COMPRESS
// - CAPTCHA_OUT_DIR, CAPTCHA_COUNT
// - CAPTCHA_ALPHABET, CAPTCHA_MIN_LENGTH, CAPTCHA_MAX_LENGTH, CAPTCHA_WIDTH,
//   CAPTCHA_HEIGHT, CAPTCHA_FONT_SIZE, CAPTCHA_FONT_FAMILY, CAPTCHA_FONT_FILE
func (c *Config) applyEnv() {
	c.Log.Level = getenvString("LOG_LEVEL", c.Log.Level)
	c.Log.File = getenvString("LOG_FILE", c.Log.File)
	c.Log.MaxSizeMB = getenvInt("LOG_MAX_SIZE_MB", c.Log.MaxSizeMB)
	c.Log.MaxBackups = getenvInt("LOG_MAX_BACKUPS", c.Log.MaxBackups)
	c.Log.MaxAgeDays = getenvInt("LOG_MAX_DAYS", c.Log.MaxAgeDays)
	c.Log.Compress = getenvBool("LOG_COMPRESS", c.Log.Compress)

	c.Output.Dir = getenvString("CAPTCHA_OUT_DIR", c.Output.Dir)
	c.Output.Count = getenvInt("CAPTCHA_COUNT", c.Output.Count)

	c.Captcha.Alphabet = getenvString("CAPTCHA_ALPHABET", c.Captcha.Alphabet)
	c.Captcha.MinLength = getenvInt("CAPTCHA_MIN_LENGTH", c.Captcha.MinLength)
	c.Captcha.MaxLength = getenvInt("CAPTCHA_MAX_LENGTH", c.Captcha.MaxLength)
	c.Captcha.Width = getenvInt("CAPTCHA_WIDTH", c.Captcha.Width)
	c.Captcha.Height = getenvInt("CAPTCHA_HEIGHT", c.Captcha.Height)
	c.Captcha.FontSize = getenvFloat("CAPTCHA_FONT_SIZE", c.Captcha.FontSize)
	c.Captcha.FontFamily = getenvString("CAPTCHA_FONT_FAMILY", c.Captcha.FontFamily)
	c.Captcha.FontFile = getenvString("CAPTCHA_FONT_FILE", c.Captcha.FontFile)
}

func (c *Config) Validate() error {
	if c.Output.Count < 1 {
		return errors.Errorf("output.count must be at least 1, got %d", c.Output.Count)
	}
	if c.Output.Dir == "" {
		return errors.New("output.dir is empty")
	}
	if c.Captcha.Alphabet == "" {
		return errors.New("captcha.alphabet is empty")
	}
	if min(c.Captcha.MinLength, c.Captcha.MaxLength) < 1 {
		return errors.Errorf("captcha length bounds [%d, %d] must both be at least 1",
			c.Captcha.MinLength, c.Captcha.MaxLength)
	}
	if c.Captcha.Width < 0 || c.Captcha.Height < 0 {
		return errors.Errorf("captcha canvas %dx%d", c.Captcha.Width, c.Captcha.Height)
	}
	if fs := c.Captcha.FontSize; math.IsNaN(fs) || math.IsInf(fs, 0) || fs < 1 {
		return errors.Errorf("captcha.font_size must be at least 1, got %v", c.Captcha.FontSize)
	}
	if c.Captcha.FontFile == "" && !captcha.FontFamily(c.Captcha.FontFamily).Valid() {
		return errors.Errorf("unknown captcha.font_family %q", c.Captcha.FontFamily)
	}
	return nil
}

// captchaConfig builds the library configuration. Rand stays nil so every
// challenge draws from its own entropy-seeded source.
func (c CaptchaConfig) captchaConfig(logger *zap.Logger) captcha.Config {
	cfg := captcha.DefaultConfig()
	cfg.Answer.Alphabet = c.Alphabet
	cfg.Answer.MinLength = c.MinLength
	cfg.Answer.MaxLength = c.MaxLength

	cfg.Render.Width = c.Width
	cfg.Render.Height = c.Height
	cfg.Render.FontSize = c.FontSize
	cfg.Render.FontFamily = captcha.FontFamily(c.FontFamily)
	cfg.Render.FontFile = c.FontFile
	cfg.Render.LineWidth = c.LineWidth
	cfg.Render.Alphabet = c.Alphabet
	cfg.Render.Logger = logger
	return cfg
}
