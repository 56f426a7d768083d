// internal/reflen/reflen.go
package reflen

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads a whitespace-separated file of
//
//	name length [ignored columns...]
//
// such as a samtools faidx .fai, into a reference-length map. Blank lines
// and '#' comments are skipped.
func Load(path string) (map[string]int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	lengths := map[string]int{}
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 2 {
			return nil, fmt.Errorf("%s:%d: want name and length, got %q", path, ln, line)
		}
		n, err := strconv.Atoi(f[1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s:%d: bad length %q for %s", path, ln, f[1], f[0])
		}
		lengths[f[0]] = n
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lengths, nil
}
