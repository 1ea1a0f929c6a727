package linewise

import (
	"errors"
	"io"
	"strings"
)

// CollectLines drains src and returns its lines in order, terminators
// preserved. An empty source yields a nil slice.
func CollectLines(src LineSource) ([]string, error) {
	var lines []string
	for {
		line, err := src.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return lines, err
		}
		lines = append(lines, line)
	}
}

// Chomp strips one trailing line terminator ("\n" or "\r\n") from line.
func Chomp(line string) string {
	if l := strings.TrimSuffix(line, "\n"); l != line {
		return strings.TrimSuffix(l, "\r")
	}
	return line
}
