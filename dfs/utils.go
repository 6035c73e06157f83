// Package dfs provides helper functions used by cycle detection:
// string-slice search, signatures, and Booth's minimal-rotation algorithm.
package dfs

import (
	"strings"
)

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func IndexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// JoinSig concatenates the elements of c with commas, producing a single string signature.
// Time Complexity: O(n + total length of elements).
func JoinSig(c []string) string {
	return strings.Join(c, ",")
}

// MinimalRotation implements Booth's algorithm to find the lexicographically minimal rotation of s.
// It returns a new slice of length len(s) representing the minimal rotation in O(n) time.
// Algorithm overview:
// 1. Duplicate the sequence (doubled) to length 2n.
// 2. Maintain an array f of failure links initialized to -1.
// 3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
// 4. After scanning, extract the rotation starting at index k.
// Time Complexity: O(n).
func MinimalRotation(s []string) []string {
	n := len(s)
	doubled := make([]string, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // mismatch or i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]string, n)
	copy(res, doubled[k:k+n])

	return res
}
