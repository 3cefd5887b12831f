package graynorm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	geneIndexRE = regexp.MustCompile(`^(\d+)$`)
	geneRangeRE = regexp.MustCompile(`^(\d+)-(\d+)$`)
)

// ParseGeneIndexSpec parses a 1-based candidate-gene column selection like
// "1,3-5" into 0-based header indices.
func ParseGeneIndexSpec(spec string) ([]int, error) {
	var idx []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)

		if m := geneIndexRE.FindStringSubmatch(part); m != nil {
			i, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("graynorm: invalid gene specs: %s", spec)
			}
			idx = append(idx, i-1)
			continue
		}
		if m := geneRangeRE.FindStringSubmatch(part); m != nil {
			lo, err1 := strconv.Atoi(m[1])
			hi, err2 := strconv.Atoi(m[2])
			if err1 != nil || err2 != nil || lo > hi {
				return nil, fmt.Errorf("graynorm: invalid gene specs: %s", spec)
			}
			for i := lo - 1; i < hi; i++ {
				idx = append(idx, i)
			}
			continue
		}

		return nil, fmt.Errorf("graynorm: invalid gene specs: %s", spec)
	}

	if len(idx) == 0 {
		return nil, fmt.Errorf("graynorm: invalid gene specs: %s", spec)
	}
	return idx, nil
}
