package main

import (
	"encoding/json"
	"io"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"textCaptcha/captcha"
)

func TestGenerateChallenge(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	cfg := DefaultConfig()
	cfg.Output.Dir = t.TempDir()
	cfg.Output.Inline = true
	d := captcha.NewDriver(cfg.Captcha.captchaConfig(logger))

	rsp, err := generateChallenge(d, cfg.Output, logger)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfg.Output.Dir, rsp.UUID+".png"), rsp.File)
	assert.GreaterOrEqual(t, len(rsp.Answer), 10)
	assert.Equal(t, 48, rsp.Height)
	assert.True(t, strings.HasPrefix(rsp.Image, "data:image/png;base64,"))

	f, err := os.Open(rsp.File)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, rsp.Width, img.Bounds().Dx())
	assert.Equal(t, rsp.Height, img.Bounds().Dy())

	entries := logs.FilterMessage("challenge generated").All()
	require.Len(t, entries, 1)
	assert.Equal(t, rsp.UUID, entries[0].ContextMap()["uuid"])

	line, err := json.Marshal(rsp)
	require.NoError(t, err)
	assert.Contains(t, string(line), `"uuid":"`+rsp.UUID+`"`)
}

func TestGenerateChallengeWithoutInline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Dir = t.TempDir()
	cfg.Captcha.Width, cfg.Captcha.Height = 200, 60
	d := captcha.NewDriver(cfg.Captcha.captchaConfig(zap.NewNop()))

	rsp, err := generateChallenge(d, cfg.Output, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, rsp.Image)
	assert.Equal(t, 200, rsp.Width)
	assert.Equal(t, 60, rsp.Height)
}

func TestGenerateChallengeFailures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Dir = t.TempDir()
	cfg.Captcha.FontFile = filepath.Join(cfg.Output.Dir, "missing.ttf")
	d := captcha.NewDriver(cfg.Captcha.captchaConfig(zap.NewNop()))

	_, err := generateChallenge(d, cfg.Output, zap.NewNop())
	require.ErrorIs(t, err, captcha.ErrResourceUnavailable)

	cfg = DefaultConfig()
	cfg.Output.Dir = filepath.Join(t.TempDir(), "does", "not", "exist")
	d = captcha.NewDriver(cfg.Captcha.captchaConfig(zap.NewNop()))
	_, err = generateChallenge(d, cfg.Output, zap.NewNop())
	require.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "captcha.log")
	logger, err := initLogger(LogConfig{Level: "debug", File: file, MaxSizeMB: 1})
	require.NoError(t, err)
	logger.Debug("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"level":"debug"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel(" DEBUG ").String())
	assert.Equal(t, "warn", parseLevel("warning").String())
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "info", parseLevel("verbose").String())
}

type failingWriterTo struct{}

func (failingWriterTo) WriteTo(w io.Writer) (int64, error) {
	n, _ := w.Write([]byte("\x89PNG partial"))
	return int64(n), errors.New("disk full")
}

func TestSaveImageRemovesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.png")
	err := saveImage(path, failingWriterTo{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveImage(t *testing.T) {
	d := captcha.NewDriver(captcha.DefaultConfig())
	item, err := d.DrawCaptcha("AB12")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ok.png")
	require.NoError(t, saveImage(path, item))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	require.NoError(t, err)
}
