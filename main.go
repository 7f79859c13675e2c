package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"textCaptcha/captcha"
)

const version = "0.1.0"

var (
	configFile  = flag.String("config", os.Getenv("CAPTCHA_CONFIG"), "Specify the YAML configuration file.(env:CAPTCHA_CONFIG)")
	count       = flag.Int("n", 0, "Number of captchas to generate, overrides output.count.")
	outDir      = flag.String("out", "", "Directory for the PNG files, overrides output.dir.")
	inline      = flag.Bool("inline", false, "Include the base64 PNG data URI in the JSON output.")
	showVersion = flag.Bool("version", false, "Show version.")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *count > 0 {
		cfg.Output.Count = *count
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *inline {
		cfg.Output.Inline = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		logger.Fatal("create output directory", zap.String("dir", cfg.Output.Dir), zap.Error(err))
	}

	d := captcha.NewDriver(cfg.Captcha.captchaConfig(logger))
	enc := json.NewEncoder(os.Stdout)
	for i := 0; i < cfg.Output.Count; i++ {
		rsp, err := generateChallenge(d, cfg.Output, logger)
		if err != nil {
			logger.Fatal("captcha unavailable", zap.Error(err))
		}
		if err := enc.Encode(rsp); err != nil {
			logger.Fatal("write output", zap.Error(err))
		}
	}
}
