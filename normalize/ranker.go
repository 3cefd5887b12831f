package normalize

import (
	"sort"
	"sync"
)

// Combinations enumerates every non-empty subset of items: by increasing
// subset size, and within each size in the order items were given. This order
// is the tie-break order for equal ranking keys.
func Combinations(items []string) [][]string {
	n := len(items)
	out := make([][]string, 0, (1<<n)-1)

	for size := 1; size <= n; size++ {
		idx := make([]int, size)
		for i := range idx {
			idx[i] = i
		}
		for {
			subset := make([]string, size)
			for i, j := range idx {
				subset[i] = items[j]
			}
			out = append(out, subset)

			// Advance to the next index combination, rightmost position
			// first.
			i := size - 1
			for i >= 0 && idx[i] == n-size+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for j := i + 1; j < size; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}

	return out
}

// RankAll scores every non-empty subset of the candidate genes and returns
// the results sorted ascending by inter-group CV. Ties keep enumeration
// order. The result holds 2^k − 1 combinations for k candidates, so runtime
// and memory are exponential in the candidate count.
func (t *Table) RankAll(candidates []string) ([]Combination, error) {
	results := make([]Combination, 0, (1<<len(candidates))-1)
	for _, subset := range Combinations(candidates) {
		c, err := t.Score(subset)
		if err != nil {
			return nil, err
		}
		results = append(results, c)
	}

	sortByCVInter(results)
	return results, nil
}

// RankAllConcurrent is RankAll with the per-subset scoring fanned out over at
// most workers goroutines. Results are identical to RankAll: each subset's
// score lands at its enumeration index before the final stable sort.
func (t *Table) RankAllConcurrent(candidates []string, workers int) ([]Combination, error) {
	if workers < 1 {
		workers = 1
	}

	subsets := Combinations(candidates)
	results := make([]Combination, len(subsets))
	errs := make([]error, len(subsets))

	var wg sync.WaitGroup
	sem := make(chan bool, workers)
	for i, subset := range subsets {
		sem <- true
		wg.Add(1)
		go func(i int, subset []string) {
			defer wg.Done()
			results[i], errs[i] = t.Score(subset)
			<-sem
		}(i, subset)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sortByCVInter(results)
	return results, nil
}

func sortByCVInter(results []Combination) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Overall.CVInter < results[j].Overall.CVInter
	})
}
