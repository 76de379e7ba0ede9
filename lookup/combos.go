package lookup

import "sort"

// choose returns every k-combination of the indices [0,n), each combo
// sorted ascending, in lexicographic order. It underlies every category
// enumeration in §4.1 step 2.
func choose(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}
	var out [][]int
	combo := make([]int, k)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k {
			cp := make([]int, k)
			copy(cp, combo)
			out = append(out, cp)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}

// sizeClass is one run of equally-sized groups within a descending
// group-size profile, e.g. the profile [2,2,1] (two pair plus a kicker)
// has size classes {size:2,count:2} then {size:1,count:1}.
type sizeClass struct {
	size  int
	count int
}

func classesOf(profile []int) []sizeClass {
	var classes []sizeClass
	for _, s := range profile {
		if len(classes) > 0 && classes[len(classes)-1].size == s {
			classes[len(classes)-1].count++
			continue
		}
		classes = append(classes, sizeClass{size: s, count: 1})
	}
	return classes
}

// groupCombo is one enumerated rank-group assignment: ranks is the flat
// list of rank positions with repeats matching the group profile (used to
// compute the prime-product hash), key is the most-significant-first
// comparison vector (used only to sort groupCombos into weakest-to-
// -strongest order before indices are assigned).
type groupCombo struct {
	ranks []int
	key   []int
}

// genGroups enumerates every way to assign distinct rank positions out of
// [0,n) to a descending group-size profile (§4.1 step 2's "combinations in
// ascending rank-order position"), returning the results already sorted
// weakest-to-strongest. It covers every non-straight, non-flush category:
// four-of-a-kind ([4,1]), full house ([3,2]), three-of-a-kind ([3,1,1]),
// two pair ([2,2,1]), one pair ([2,1,1,1]) and high-card ([1,1,1,1,1]),
// plus every Badugi/partial-hand length-1..4 shape.
func genGroups(n int, profile []int) []groupCombo {
	classes := classesOf(profile)
	allPositions := make([]int, n)
	for i := range allPositions {
		allPositions[i] = i
	}

	var results []groupCombo
	var chosen [][]int
	var rec func(classIdx int, remaining []int)
	rec = func(classIdx int, remaining []int) {
		if classIdx == len(classes) {
			var ranks, key []int
			for ci, cls := range classes {
				for _, pos := range chosen[ci] {
					for k := 0; k < cls.size; k++ {
						ranks = append(ranks, pos)
					}
				}
				key = append(key, chosen[ci]...)
			}
			results = append(results, groupCombo{ranks: ranks, key: key})
			return
		}
		cls := classes[classIdx]
		for _, idxCombo := range choose(len(remaining), cls.count) {
			picked := make([]int, cls.count)
			used := make(map[int]bool, cls.count)
			for i, idx := range idxCombo {
				picked[i] = remaining[idx]
				used[remaining[idx]] = true
			}
			sort.Sort(sort.Reverse(sort.IntSlice(picked)))

			newRemaining := make([]int, 0, len(remaining)-cls.count)
			for _, p := range remaining {
				if !used[p] {
					newRemaining = append(newRemaining, p)
				}
			}

			chosen = append(chosen, picked)
			rec(classIdx+1, newRemaining)
			chosen = chosen[:len(chosen)-1]
		}
	}
	rec(0, allPositions)

	sort.Slice(results, func(i, j int) bool {
		return lessKey(results[i].key, results[j].key)
	})
	return results
}

func lessKey(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// isConsecutiveRun reports whether sorted ascending ints form a run of
// len(positions) consecutive integers.
func isConsecutiveRun(sortedAsc []int) bool {
	for i := 1; i < len(sortedAsc); i++ {
		if sortedAsc[i] != sortedAsc[i-1]+1 {
			return false
		}
	}
	return true
}
