package captcha

import (
	"bytes"
	"encoding/base64"
	"image"
	"io"

	"github.com/google/uuid"
	"github.com/mojocn/base64Captcha"
	"go.uber.org/zap"
)

// Driver plugs the generator into base64Captcha.NewCaptcha. The store passed
// alongside it keeps the id to answer mapping.
//
// A Rand set in the config is shared by every call; leave it nil when the
// driver is used from several goroutines.
type Driver struct {
	cfg Config
}

var _ base64Captcha.Driver = (*Driver)(nil)

func NewDriver(cfg Config) *Driver {
	return &Driver{cfg: cfg}
}

// GenerateIdQuestionAnswer returns a uuid and a fresh answer as both question
// and expected answer. On a bad answer config the content is empty and the
// following DrawCaptcha reports ErrInvalidArgument.
func (d *Driver) GenerateIdQuestionAnswer() (id, q, a string) {
	id = uuid.New().String()
	answer, err := GenerateAnswer(d.cfg.Answer)
	if err != nil {
		d.logger().Warn("generate captcha answer", zap.String("id", id), zap.Error(err))
		return id, "", ""
	}
	return id, answer, answer
}

// DrawCaptcha renders content.
func (d *Driver) DrawCaptcha(content string) (base64Captcha.Item, error) {
	img, err := Render(content, d.cfg.Render)
	if err != nil {
		return nil, err
	}
	return &Item{img: img}, nil
}

func (d *Driver) logger() *zap.Logger {
	if d.cfg.Render.Logger != nil {
		return d.cfg.Render.Logger
	}
	return zap.NewNop()
}

// Item is a rendered captcha image.
type Item struct {
	img *image.RGBA
}

var _ base64Captcha.Item = (*Item)(nil)

func (it *Item) Image() *image.RGBA { return it.img }

// WriteTo writes the image as PNG.
func (it *Item) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, it.img); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// EncodeB64string returns a data:image/png;base64 URI, or "" if encoding
// fails.
func (it *Item) EncodeB64string() string {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, it.img); err != nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}
