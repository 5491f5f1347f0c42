package natsort

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestMakeKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []token
	}{
		{
			name: "empty string",
			in:   "",
			want: nil,
		},
		{
			name: "text only",
			in:   "cover",
			want: []token{{textToken, "cover"}},
		},
		{
			name: "digits only",
			in:   "0042",
			want: []token{{numberToken, "0042"}},
		},
		{
			name: "mixed runs",
			in:   "v2_frame010",
			want: []token{{textToken, "v"}, {numberToken, "2"}, {textToken, "_frame"}, {numberToken, "010"}},
		},
		{
			name: "typical frame name",
			in:   "frame10.png",
			want: []token{{textToken, "frame"}, {numberToken, "10"}, {textToken, ".png"}},
		},
		{
			name: "non-ascii text run",
			in:   "кадр7",
			want: []token{{textToken, "кадр"}, {numberToken, "7"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeKey(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("MakeKey(%q) produced %d tokens, want %d", tt.in, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = {%d %q}, want {%d %q}", i, got[i].kind, got[i].val, tt.want[i].kind, tt.want[i].val)
				}
			}
		})
	}
}

// Segmentation must be lossless and runs must be maximal for any input.
func TestMakeKey_Invariants(t *testing.T) {
	inputs := []string{
		"", "frame1.png", "0001", "a2b10", "..12..34..", "12ab34cd",
		"фрагмент0099x", "no-digits-at-all", "7",
	}
	for _, in := range inputs {
		key := MakeKey(in)

		var sb strings.Builder
		for _, tok := range key {
			sb.WriteString(tok.val)
		}
		if sb.String() != in {
			t.Errorf("concatenated tokens of %q = %q", in, sb.String())
		}

		for i := 1; i < len(key); i++ {
			if key[i].kind == key[i-1].kind {
				t.Errorf("%q: adjacent tokens %d and %d share kind %d", in, i-1, i, key[i].kind)
			}
		}
		for _, tok := range key {
			if tok.val == "" {
				t.Errorf("%q: empty token in key", in)
			}
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal plain", "frame1.png", "frame1.png", 0},
		{"numeric not lexical", "frame9.png", "frame10.png", -1},
		{"padding is ignored", "f007.png", "f7.png", 0},
		{"padded still ordered", "frame001.png", "frame0010.png", -1},
		{"text decides first", "a10", "b2", -1},
		{"second text segment", "a2b1", "a2b10", -1},
		{"prefix sorts first", "frame1", "frame1x", -1},
		{"number prefix sorts first", "frame", "frame1", -1},
		{"empty sorts first", "", "a", -1},
		{"both empty", "", "", 0},
		{"kind mismatch falls back to text", "a!", "a1", -1},
		{"case sensitive", "Frame1", "frame1", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			// antisymmetry comes for free with every case
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestCompare_NoPaddingProgression(t *testing.T) {
	// i < j must hold whatever padding either side carries
	pads := []string{"", "0", "00", "000000"}
	for i := 0; i < 25; i++ {
		for _, pi := range pads {
			for _, pj := range pads {
				a := fmt.Sprintf("frame%s%d", pi, i)
				b := fmt.Sprintf("frame%s%d", pj, i+1)
				if Compare(a, b) != -1 {
					t.Fatalf("Compare(%q, %q) != -1", a, b)
				}
			}
		}
	}
}

func TestCompare_HugeDigitRuns(t *testing.T) {
	// digit runs far beyond what any fixed-width integer could hold
	small := "f" + strings.Repeat("9", 40)
	big := "f1" + strings.Repeat("0", 40)
	if got := Compare(small, big); got != -1 {
		t.Errorf("Compare(40 nines, 1e40) = %d, want -1", got)
	}
	padded := "f" + strings.Repeat("0", 100) + strings.Repeat("9", 40)
	if got := Compare(small, padded); got != 0 {
		t.Errorf("Compare ignoring 100 zeros of padding = %d, want 0", got)
	}
}

func TestCompare_Transitivity(t *testing.T) {
	names := []string{
		"", "a", "a0", "a1", "a01", "a2", "a10", "a10b", "a10b1", "b",
		"frame1.png", "frame01.png", "frame2.png", "frame10.png", "x1y", "x01z",
	}
	for _, a := range names {
		for _, b := range names {
			for _, c := range names {
				if Compare(a, b) == -1 && Compare(b, c) == -1 && Compare(a, c) != -1 {
					t.Fatalf("transitivity violated: %q < %q < %q but Compare(%q, %q) = %d",
						a, b, c, a, c, Compare(a, c))
				}
			}
		}
	}
}

func TestCompareFold(t *testing.T) {
	if got := CompareFold("Frame10", "frame9"); got != 1 {
		t.Errorf("CompareFold(Frame10, frame9) = %d, want 1", got)
	}
	if got := CompareFold("FRAME1.PNG", "frame1.png"); got != 0 {
		t.Errorf("CompareFold with different case = %d, want 0", got)
	}
	// numbers are unaffected by folding
	if got := CompareFold("A007", "a7"); got != 0 {
		t.Errorf("CompareFold(A007, a7) = %d, want 0", got)
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no padding",
			in:   []string{"frame1.png", "frame10.png", "frame2.png", "frame9.png"},
			want: []string{"frame1.png", "frame2.png", "frame9.png", "frame10.png"},
		},
		{
			name: "inconsistent padding",
			in:   []string{"frame001.png", "frame0010.png", "frame002.png", "frame00100.png"},
			want: []string{"frame001.png", "frame002.png", "frame0010.png", "frame00100.png"},
		},
		{
			name: "multiple numeric segments",
			in:   []string{"v2_frame010.png", "v2_frame9.png", "v10_frame1.png", "v1_frame100.png"},
			want: []string{"v1_frame100.png", "v2_frame9.png", "v2_frame010.png", "v10_frame1.png"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Clone(tt.in)
			Sort(got)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Sort(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSort_Stable(t *testing.T) {
	// equal keys must keep input order
	in := []string{"f07.png", "f7.png", "f007.png"}
	got := slices.Clone(in)
	Sort(got)
	if !slices.Equal(got, in) {
		t.Errorf("Sort reordered equal names: %v", got)
	}
}

func TestSortFold(t *testing.T) {
	in := []string{"Frame10.png", "frame2.png", "FRAME1.png"}
	want := []string{"FRAME1.png", "frame2.png", "Frame10.png"}
	SortFold(in)
	if !slices.Equal(in, want) {
		t.Errorf("SortFold = %v, want %v", in, want)
	}
}

func BenchmarkCompare(b *testing.B) {
	for b.Loop() {
		Compare("v2_frame000123.png", "v2_frame124.png")
	}
}
