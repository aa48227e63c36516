package pdfs

import "testing"

func TestIsPDF(t *testing.T) {
	if !IsPDF([]byte("%PDF-1.7\n...")) {
		t.Fatalf("signature not recognized")
	}
	if IsPDF([]byte("<html></html>")) {
		t.Fatalf("non-PDF accepted")
	}
	if IsPDF(nil) {
		t.Fatalf("empty input accepted")
	}
}

func TestCountPages(t *testing.T) {
	cases := []struct {
		name string
		data string
		want int
	}{
		{"single page", "%PDF-1.4 << /Type /Page >>", 1},
		{"three pages", "%PDF-1.4 << /Type /Page >> << /Type /Page >> << /Type\n/Page >>", 3},
		{"page tree node excluded", "%PDF-1.4 << /Type /Pages /Kids [] >> << /Type /Page >>", 1},
		{"no pages", "%PDF-1.4 << /Type /Catalog >>", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CountPages([]byte(tc.data)); got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}
