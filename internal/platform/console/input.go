package console

import (
	"bufio"
	"io"
)

// Stream delivers raw input bytes read by a background goroutine.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error.
func StartStream(r io.Reader) *Stream {
	br := bufio.NewReader(r)
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := br.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Drain returns every byte available without blocking.
func (s *Stream) Drain() []byte {
	var buf []byte
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.ch = nil
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

// ParseKeys converts raw terminal bytes into the key names used by core.KeyMap.
// Arrow keys arrive as ESC [ A..D; a lone ESC is "esc".
func ParseKeys(buf []byte) []string {
	var keys []string
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if i+2 < len(buf) && buf[i+1] == '[' {
				if name, ok := arrows[buf[i+2]]; ok {
					keys = append(keys, name)
					i += 2
					continue
				}
			}
			keys = append(keys, "esc")
			continue
		}

		switch {
		case b == 0x03:
			keys = append(keys, "ctrl+c")
		case b == '\r' || b == '\n':
			keys = append(keys, "enter")
		case b == ' ':
			keys = append(keys, "space")
		case b > ' ' && b < 0x7f:
			keys = append(keys, string(rune(b)))
		}
	}
	return keys
}

var arrows = map[byte]string{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
}
