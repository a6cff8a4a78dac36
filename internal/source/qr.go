package source

import (
	"fmt"
	"image"

	"github.com/skip2/go-qrcode"
)

// QRSource is a one-page placeholder: a QR code of Text, Size pixels square.
// It is what gets previewed when no input file is given.
type QRSource struct {
	Text string
	Size int
}

func NewQRSource(text string, size int) *QRSource {
	if size <= 0 {
		size = 256
	}
	return &QRSource{Text: text, Size: size}
}

func (q *QRSource) PageCount() int {
	return 1
}

func (q *QRSource) GetPageDimensions(index int) (float64, float64, error) {
	if index != 0 {
		return 0, 0, fmt.Errorf("page %d out of range [0, 1)", index)
	}
	return float64(q.Size), float64(q.Size), nil
}

func (q *QRSource) RenderPage(index int, dpi int) (image.Image, error) {
	if index != 0 {
		return nil, fmt.Errorf("page %d out of range [0, 1)", index)
	}
	code, err := qrcode.New(q.Text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}
	return code.Image(q.Size), nil
}

func (q *QRSource) Close() error {
	return nil
}
