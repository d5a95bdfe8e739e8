package hexdump

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

const DefaultLineWidth = 80

// each byte needs 2 hex digits, 1 blank and 1 ASCII character
const MinLineWidth = 4

const hexDigits = "0123456789abcdef"

var ErrInvalidConfiguration = errors.New("invalid configuration")
var ErrInvalidArgument = errors.New("invalid argument")

// Dump renders the first length bytes of data as lines of hex byte values
// followed by their ASCII rendering. Each line holds lineWidth/4 bytes; a
// short last line is padded so the ASCII column stays aligned. The last line
// is not newline terminated. A zero length always yields the empty string.
func Dump(data []byte, length, lineWidth int) (string, error) {
	if length == 0 {
		return "", nil
	}
	if lineWidth < MinLineWidth {
		return "", errors.Wrapf(ErrInvalidConfiguration, "line width %d too small (must be at least %d)", lineWidth, MinLineWidth)
	}
	if data == nil {
		return "", errors.Wrapf(ErrInvalidArgument, "nil data with length %d", length)
	}
	if length < 0 || length > len(data) {
		return "", errors.Wrapf(ErrInvalidArgument, "length %d out of range for %d byte buffer", length, len(data))
	}

	bytesPerLine := lineWidth / 4
	lineCount := (length + bytesPerLine - 1) / bytesPerLine

	var output strings.Builder
	output.Grow(lineCount * (bytesPerLine*4 + 1))
	ascii := make([]byte, 0, bytesPerLine)

	for i := 0; i < length; i += bytesPerLine {
		end := min(i+bytesPerLine, length)
		ascii = ascii[:0]
		for _, b := range data[i:end] {
			output.WriteByte(hexDigits[b>>4])
			output.WriteByte(hexDigits[b&0x0f])
			output.WriteByte(' ')
			ascii = append(ascii, printable(b))
		}
		for j := end - i; j < bytesPerLine; j++ {
			output.WriteString("   ")
		}
		output.Write(ascii)
		if end < length {
			output.WriteByte('\n')
		}
	}
	return output.String(), nil
}

// Format dumps all of data.
func Format(data []byte, lineWidth int) (string, error) {
	return Dump(data, len(data), lineWidth)
}

// printable returns b if it is a graphic ASCII character, otherwise '.'
func printable(b byte) byte {
	if b > ' ' && b < 0x7f {
		return b
	}
	return '.'
}

// Hexdump holds a rendered dump.
type Hexdump struct {
	text      string
	length    int
	lineWidth int
}

func New(data []byte, length, lineWidth int) (*Hexdump, error) {
	text, err := Dump(data, length, lineWidth)
	if err != nil {
		return nil, err
	}
	return &Hexdump{text: text, length: length, lineWidth: lineWidth}, nil
}

func (h *Hexdump) String() string {
	return h.text
}

// Length returns the number of source bytes rendered.
func (h *Hexdump) Length() int {
	return h.length
}

func (h *Hexdump) LineWidth() int {
	return h.lineWidth
}

func (h *Hexdump) BytesPerLine() int {
	return h.lineWidth / 4
}

// Lines returns the dump split into lines, nil when the dump is empty.
func (h *Hexdump) Lines() []string {
	if h.text == "" {
		return nil
	}
	return strings.Split(h.text, "\n")
}

// WriteTo writes the dump text verbatim to w.
func (h *Hexdump) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, h.text)
	return int64(n), err
}
