package cli

import (
	"io"

	"github.com/alexanderramin/faqbot/internal/textproc"
)

// promptReader reads answers to console prompts one line at a time.
type promptReader struct {
	in     io.Reader
	lastCR bool
}

func newPromptReader(in io.Reader) *promptReader {
	return &promptReader{in: in}
}

// ReadLine reads until either LF or CR so Enter works in normal and raw
// terminal modes. The LF of a CRLF pair is skipped. At end of input a
// partial line is returned without error; afterwards io.EOF.
func (r *promptReader) ReadLine() (string, error) {
	if r.in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := r.in.Read(one[:])
		if n > 0 {
			c := one[0]
			skip := r.lastCR && c == '\n' && len(buf) == 0
			r.lastCR = c == '\r'
			switch {
			case skip:
			case c == '\n' || c == '\r':
				return string(buf), nil
			default:
				buf = append(buf, c)
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}

// parseContinue interprets the answer to the continuation prompt. ok is
// false for anything other than 1/sim or 2/não.
func parseContinue(text string) (cont, ok bool) {
	switch textproc.Fold(text) {
	case "1", "sim":
		return true, true
	case "2", "nao":
		return false, true
	}
	return false, false
}
