package programs

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var ErrEmptyProgram = errors.New("empty program")

type ParseError struct {
	Index int
	Token string
	Err   error
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("token %d %q: %v", p.Index, p.Token, p.Err)
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

// Parse reads comma separated base-10 words.
func Parse(text string) ([]int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyProgram
	}
	tokens := strings.Split(text, ",")
	ret := make([]int64, 0, len(tokens))
	for i, token := range tokens {
		v, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		if err != nil {
			return nil, &ParseError{
				Index: i,
				Token: token,
				Err:   err,
			}
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func Load(path string) ([]int64, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ret, err := Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ret, nil
}

func Format(values []int64) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}
	return b.String()
}
