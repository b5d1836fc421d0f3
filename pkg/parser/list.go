package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize caps a single line of a password list.
const maxLineSize = 64 * 1024

// Entry is one password from a list, with its 1-based line number.
type Entry struct {
	Line  int
	Value string
}

// ParsePasswordList reads one password per line. Blank lines and lines
// starting with '#' are skipped. Surrounding spaces are part of the password;
// only the line terminator is removed.
func ParsePasswordList(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var entries []Entry
	line := 0
	for scanner.Scan() {
		line++
		value := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(value) == "" || strings.HasPrefix(value, "#") {
			continue
		}
		entries = append(entries, Entry{Line: line, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read password list at line %d: %w", line+1, err)
	}
	return entries, nil
}
