package input

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// ss3Keys maps the final byte of ESC O sequences
var ss3Keys = map[byte]string{
	'A': "arrow_up",
	'B': "arrow_down",
	'C': "arrow_right",
	'D': "arrow_left",
	'P': "f1",
	'Q': "f2",
	'R': "f3",
	'S': "f4",
}

// csiTildeKeys maps the numeric parameter of ESC [ n ~ sequences
var csiTildeKeys = map[string]string{
	"15": "f5",
	"17": "f6",
	"18": "f7",
	"19": "f8",
	"20": "f9",
	"21": "f10",
	"23": "f11",
	"24": "f12",
}

// DecodeKeys splits a chunk of raw terminal bytes into key codes.
// Arrow and function keys arrive as escape sequences; a lone ESC is the Escape key.
// Ctrl+C decodes to "quit". Unknown sequences are dropped.
func DecodeKeys(buf []byte) []string {
	var codes []string

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b == 0x1b:
			code, n := decodeEscape(buf[i:])
			if code != "" {
				codes = append(codes, code)
			}
			i += n - 1
		case b == 3:
			codes = append(codes, "quit")
		case b == '\t':
			codes = append(codes, "tab")
		case b == '\r' || b == '\n':
			codes = append(codes, "enter")
		case b >= 32 && b < 127:
			codes = append(codes, strings.ToLower(string(b)))
		}
	}

	return codes
}

// decodeEscape decodes one escape sequence at the start of seq and returns the code and
// how many bytes it used
func decodeEscape(seq []byte) (string, int) {
	if len(seq) == 1 {
		return "escape", 1
	}

	switch seq[1] {
	case 'O':
		if len(seq) < 3 {
			return "", len(seq)
		}
		return ss3Keys[seq[2]], 3
	case '[':
		// CSI: parameters then a final byte in 0x40..0x7e
		for j := 2; j < len(seq); j++ {
			c := seq[j]
			if c >= 0x40 && c <= 0x7e {
				params := string(seq[2:j])
				if c == '~' {
					return csiTildeKeys[params], j + 1
				}
				if params == "" || params == "1" {
					return ss3Keys[c], j + 1
				}
				return "", j + 1
			}
		}
		return "", len(seq)
	case 0x1b:
		// ESC ESC: first one stands alone
		return "escape", 1
	}

	// Alt+key; treat as the key itself
	return "escape", 1
}

// KeyReader reads key codes from a terminal in raw mode without blocking the caller
type KeyReader struct {
	fd       int
	oldState *term.State

	mu    sync.Mutex
	codes []string
	err   error

	done chan struct{}
}

// NewKeyReader puts stdin into raw mode and starts reading keys in the background
func NewKeyReader() (*KeyReader, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}

	k := &KeyReader{fd: fd, oldState: oldState, done: make(chan struct{})}
	go k.readLoop()
	return k, nil
}

func (k *KeyReader) readLoop() {
	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			codes := DecodeKeys(buf[:n])
			k.mu.Lock()
			k.codes = append(k.codes, codes...)
			k.mu.Unlock()
		}
		if err != nil {
			k.mu.Lock()
			k.err = err
			k.mu.Unlock()
			return
		}

		select {
		case <-k.done:
			return
		default:
		}
	}
}

// Poll returns every key code read since the last call
func (k *KeyReader) Poll() ([]string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	codes := k.codes
	k.codes = nil
	return codes, k.err
}

// Close restores the terminal state
func (k *KeyReader) Close() error {
	select {
	case <-k.done:
		return nil
	default:
		close(k.done)
	}
	return term.Restore(k.fd, k.oldState)
}
