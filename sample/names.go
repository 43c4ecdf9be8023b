package sample

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadNames reads a sample list, one individual per line, and registers
// every name in s. Only the first whitespace-separated field of a line is
// used; blank lines and lines starting with '#' are skipped.
//
// The returned ids are in file order and may repeat.
func ReadNames(r io.Reader, s *Store) ([]int, error) {
	var ids []int

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		ids = append(ids, s.Register(fields[0]))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read sample names (line %d): %w", line, err)
	}

	return ids, nil
}
