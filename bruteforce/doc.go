// Package bruteforce implements the O(n^2) reference broad-phase index:
// an insertion-ordered map of object to tight AABB, scanned in full on
// every detect call. It exists as a correctness oracle for tests and a
// simple baseline, not for performance.
package bruteforce
