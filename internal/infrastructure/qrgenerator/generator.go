package qrgenerator

import (
	"errors"
	"strings"

	qr "github.com/skip2/go-qrcode"

	"monopay/internal/usecase/interfaces"
)

const DefaultSize = 256

var ErrEmptyContent = errors.New("qr content is empty")

type Generator struct {
	size int
}

var _ interfaces.IQRGenerator = (*Generator)(nil)

func NewGenerator(size int) *Generator {
	if size <= 0 {
		size = DefaultSize
	}
	return &Generator{size: size}
}

// Generate renders content (an invoice payment page) as a PNG.
func (g *Generator) Generate(content string) ([]byte, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	return qr.Encode(content, qr.Medium, g.size)
}
