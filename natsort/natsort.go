// Package natsort orders strings so that embedded numbers compare by their
// numeric value rather than by character code. This makes "frame9.png" sort
// before "frame10.png" and treats "frame007" and "frame7" as equal, no matter
// how inconsistent the zero padding is across a set of file names.
package natsort

import (
	"cmp"
	"slices"
	"strings"
)

type tokenKind uint8

const (
	textToken tokenKind = iota
	numberToken
)

// token is a maximal run of either digit or non-digit characters. Number
// tokens keep their original digits (leading zeros included) so that
// segmentation stays lossless.
type token struct {
	kind tokenKind
	val  string
}

// Key is the full ordered token decomposition of one name. It is derived once
// per name for the duration of a single sort and carries no other identity.
type Key []token

// MakeKey splits s into alternating text/number tokens. Concatenating token
// values in order always reproduces s exactly, adjacent tokens never share a
// kind and the empty string produces an empty key. No case or whitespace
// normalization happens here.
func MakeKey(s string) Key {
	if len(s) == 0 {
		return nil
	}
	key := make(Key, 0, 4)
	start := 0
	kind := kindOf(s[0])
	// NOTE: digits are ASCII only, so scanning bytes is safe - every byte of
	// a multi-byte UTF-8 sequence is above 0x7F and stays inside a text run
	for i := 1; i < len(s); i++ {
		if k := kindOf(s[i]); k != kind {
			key = append(key, token{kind: kind, val: s[start:i]})
			start, kind = i, k
		}
	}
	return append(key, token{kind: kind, val: s[start:]})
}

func kindOf(c byte) tokenKind {
	if '0' <= c && c <= '9' {
		return numberToken
	}
	return textToken
}

// Compare returns -1, 0 or 1 ordering a against b naturally. It is a total
// order over all strings: number tokens compare by numeric value (padding
// ignored), text tokens compare as plain strings, and when token kinds
// diverge at the same position both tokens are compared as raw text. A key
// that is a strict prefix of another sorts first.
func Compare(a, b string) int {
	return compareKeys(MakeKey(a), MakeKey(b), false)
}

// CompareFold is Compare with text tokens compared case-insensitively.
// Number token handling is identical.
func CompareFold(a, b string) int {
	return compareKeys(MakeKey(a), MakeKey(b), true)
}

// Less reports whether a orders before b under Compare.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// LessFold reports whether a orders before b under CompareFold.
func LessFold(a, b string) bool {
	return CompareFold(a, b) < 0
}

// Sort sorts names in natural order, stable and case-sensitive.
func Sort(names []string) {
	sortNames(names, false)
}

// SortFold sorts names in natural order ignoring text case.
func SortFold(names []string) {
	sortNames(names, true)
}

// sortNames decorates names with pre-built keys so each key is computed once
// instead of on every comparison.
func sortNames(names []string, fold bool) {
	type keyed struct {
		name string
		key  Key
	}
	ks := make([]keyed, len(names))
	for i, n := range names {
		ks[i] = keyed{name: n, key: MakeKey(n)}
	}
	slices.SortStableFunc(ks, func(x, y keyed) int {
		return compareKeys(x.key, y.key, fold)
	})
	for i := range ks {
		names[i] = ks[i].name
	}
}

func compareKeys(ka, kb Key, fold bool) int {
	for i := 0; i < len(ka) && i < len(kb); i++ {
		ta, tb := ka[i], kb[i]
		var c int
		switch {
		case ta.kind == numberToken && tb.kind == numberToken:
			c = compareNumbers(ta.val, tb.val)
		case ta.kind == textToken && tb.kind == textToken:
			c = compareText(ta.val, tb.val, fold)
		default:
			// kinds diverged - numeric vs text has no meaningful order, raw
			// text comparison keeps the result deterministic
			c = strings.Compare(ta.val, tb.val)
		}
		if c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}

// compareNumbers orders two digit runs by numeric value. Stripping leading
// zeros and comparing run length before digits is equivalent to comparing
// arbitrary precision integers and cannot overflow however long the run is.
func compareNumbers(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func compareText(a, b string, fold bool) int {
	if fold {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
	return strings.Compare(a, b)
}
