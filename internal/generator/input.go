package generator

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

var errNegativeCount = errors.New("count must not be negative")

// ReadCount reads a single case count from the first line of r
func ReadCount(r io.Reader) (int, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, &InputParseError{Input: line, Err: err}
	}

	text := strings.TrimSpace(line)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, &InputParseError{Input: text, Err: err}
	}
	if n < 0 {
		return 0, &InputParseError{Input: text, Err: errNegativeCount}
	}
	return n, nil
}
