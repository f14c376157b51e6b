package session

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"sortdemo/src/sort"
)

var (
	errNotInteger  = errors.New("not an integer")
	errOutOfRange  = errors.New("integer out of range")
	errNotPositive = errors.New("not a positive integer")
)

// leadingInt reads an optional sign and the digits after it from the start
// of token and returns the rest of the token untouched. Values must fit in
// 32 bits.
func leadingInt(token string) (int, string, error) {
	end := 0
	if end < len(token) && (token[end] == '+' || token[end] == '-') {
		end++
	}
	digits := end
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, "", errNotInteger
	}
	n, err := strconv.ParseInt(token[:end], 10, 32)
	if err != nil {
		return 0, "", errOutOfRange
	}
	return int(n), token[end:], nil
}

// ParseSize parses an array size from the start of token; only strictly
// positive integers are valid. rest is whatever follows the number.
func ParseSize(token string) (size int, rest string, err error) {
	n, rest, err := leadingInt(token)
	if err != nil {
		return 0, "", err
	}
	if n <= 0 {
		return 0, "", errNotPositive
	}
	return n, rest, nil
}

// ParseMenuChoice parses a menu answer from the start of token. Every
// integer is a valid answer, including those outside the menu.
func ParseMenuChoice(token string) (choice sort.Choice, rest string, err error) {
	n, rest, err := leadingInt(token)
	if err != nil {
		return 0, "", err
	}
	return sort.Choice(n), rest, nil
}

type line struct {
	text string
	err  error
}

// tokenReader hands out whitespace separated tokens. Tokens left on a line
// stay queued for the next read until discard drops them. Lines are read
// in the background so a pending read can be abandoned when ctx is done.
type tokenReader struct {
	in      *bufio.Reader
	lines   chan line
	pending []string
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{in: bufio.NewReader(r)}
}

// start launches the line feeder. It stops once ctx is done or the input
// ends.
func (r *tokenReader) start(ctx context.Context) {
	r.lines = make(chan line)
	go func() {
		defer close(r.lines)
		for {
			text, err := r.in.ReadString('\n')
			select {
			case r.lines <- line{text: text, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()
}

func (r *tokenReader) next(ctx context.Context) (string, error) {
	for len(r.pending) == 0 {
		var l line
		var ok bool
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case l, ok = <-r.lines:
		}
		if !ok {
			return "", io.EOF
		}
		r.pending = strings.Fields(l.text)
		if l.err != nil && len(r.pending) == 0 {
			return "", l.err
		}
	}
	tok := r.pending[0]
	r.pending = r.pending[1:]
	return tok, nil
}

// unread puts the unparsed tail of a token back in front of the queue.
func (r *tokenReader) unread(rest string) {
	if rest != "" {
		r.pending = append([]string{rest}, r.pending...)
	}
}

// discard drops whatever is left of the current line.
func (r *tokenReader) discard() {
	r.pending = nil
}
