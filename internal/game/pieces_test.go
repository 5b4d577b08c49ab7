package game

import "testing"

func TestByPiece(t *testing.T) {
	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"r,1,2", ",", []string{"r", "1", "2"}},
		{"f,,3,", ",", []string{"f", "", "3", ""}},
		{"s", ",", []string{"s"}},
	}
	for _, test := range testCases {
		n := 0
		for i, p := range byPiece(test.input, test.sep) {
			if i < 0 || i >= len(test.array) {
				t.Fatalf("byPiece returned an invalid index: %d", i)
			}
			if p != test.array[i] {
				t.Errorf("byPiece returned an incorrect piece: have %s, want %s",
					p, test.array[i])
			}
			n++
		}
		if n != len(test.array) {
			t.Errorf("byPiece returned %d pieces, want %d", n, len(test.array))
		}
	}
}

func TestStripSpace(t *testing.T) {
	if have := stripSpace(" f, 0,\t1 \n"); have != "f,0,1" {
		t.Errorf("have %q, want %q", have, "f,0,1")
	}
}
