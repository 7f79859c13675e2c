package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"textCaptcha/captcha"
)

// generateChallenge renders one captcha through the base64Captcha driver,
// saves it as <uuid>.png under out.Dir and returns what should be printed.
func generateChallenge(d *captcha.Driver, out OutputConfig, logger *zap.Logger) (*ChallengeOutput, error) {
	id, question, answer := d.GenerateIdQuestionAnswer()
	item, err := d.DrawCaptcha(question)
	if err != nil {
		return nil, errors.Wrapf(err, "challenge %s", id)
	}
	img := item.(*captcha.Item).Image()

	path := filepath.Join(out.Dir, id+".png")
	if err := saveImage(path, item); err != nil {
		return nil, err
	}

	logger.Info("challenge generated",
		zap.String("uuid", id),
		zap.String("answer", answer),
		zap.String("file", path),
	)

	rsp := &ChallengeOutput{
		UUID:   id,
		Answer: answer,
		File:   path,
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
	}
	if out.Inline {
		rsp.Image = item.EncodeB64string()
	}
	return rsp, nil
}

// saveImage writes item to path. A partially written file is removed.
func saveImage(path string, item io.WriterTo) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create image file")
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if _, err = item.WriteTo(f); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "write %s", path)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	return nil
}
