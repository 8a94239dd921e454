package customers

import "testing"

func TestValidCPF(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "valid digits only", input: "52998224725", want: true},
		{name: "valid formatted", input: "529.982.247-25", want: true},
		{name: "wrong first check digit", input: "52998224735", want: false},
		{name: "wrong second check digit", input: "52998224726", want: false},
		{name: "all equal digits", input: "11111111111", want: false},
		{name: "too short", input: "5299822472", want: false},
		{name: "too long", input: "529982247255", want: false},
		{name: "empty", input: "", want: false},
		{name: "letters", input: "abcdefghijk", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidCPF(tc.input); got != tc.want {
				t.Fatalf("ValidCPF(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeCPF(t *testing.T) {
	if got := NormalizeCPF("529.982.247-25"); got != "52998224725" {
		t.Fatalf("unexpected normalization %q", got)
	}
}
