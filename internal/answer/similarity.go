package answer

// Similarity scores the closeness of two normalized strings in [0,1]. It is
// the maximum of a Levenshtein-based ratio and a character-affinity ratio;
// the latter keeps transposed or reordered words from being punished as
// hard as true mismatches.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	editRatio := 1.0 - float64(editDistance(a, b))/float64(maxLen(a, b))
	if editRatio < 0 {
		editRatio = 0
	}
	affinity := charAffinity(a, b)
	if affinity > editRatio {
		return affinity
	}
	return editRatio
}

// editDistance computes the Levenshtein distance between two strings using
// a two-row dynamic program over runes.
func editDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// charAffinity measures shared character mass: twice the multiset
// intersection of rune counts over the combined length.
func charAffinity(a, b string) float64 {
	countsA := runeCounts(a)
	countsB := runeCounts(b)
	shared := 0
	total := 0
	for r, n := range countsA {
		total += n
		if m, ok := countsB[r]; ok {
			if m < n {
				shared += m
			} else {
				shared += n
			}
		}
	}
	for _, n := range countsB {
		total += n
	}
	if total == 0 {
		return 0
	}
	return float64(2*shared) / float64(total)
}

func runeCounts(s string) map[rune]int {
	counts := make(map[rune]int, len(s))
	for _, r := range s {
		counts[r]++
	}
	return counts
}

func maxLen(a, b string) int {
	la := len([]rune(a))
	lb := len([]rune(b))
	if la > lb {
		return la
	}
	return lb
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
