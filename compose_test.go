package timeago

import "testing"

func TestCompose(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		phrase string
		suffix string
		dir    Direction
		want   string
	}{
		{name: "ltr suffix", phrase: "5 minutes", suffix: "ago", dir: LTR, want: "5 minutes ago"},
		{name: "ltr both", prefix: "in", phrase: "5 minutes", suffix: "later", dir: LTR, want: "in 5 minutes later"},
		{name: "rtl both", prefix: "in", phrase: "5 minutes", suffix: "later", dir: RTL, want: "later 5 minutes in"},
		{name: "rtl prefix only", prefix: "ago", phrase: "5 minutes", dir: RTL, want: "5 minutes ago"},
		{name: "empty direction is ltr", prefix: "in", phrase: "a day", dir: "", want: "in a day"},
		{name: "trims", prefix: " ", phrase: "a day ", dir: LTR, want: "a day"},
		{name: "all empty", dir: RTL, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Compose(tc.prefix, tc.phrase, tc.suffix, tc.dir)
			if got != tc.want {
				t.Fatalf("Compose(%q,%q,%q,%s) = %q want %q", tc.prefix, tc.phrase, tc.suffix, tc.dir, got, tc.want)
			}
			if again := Compose(tc.prefix, tc.phrase, tc.suffix, tc.dir); again != got {
				t.Fatalf("Compose not stable: %q then %q", got, again)
			}
		})
	}
}
