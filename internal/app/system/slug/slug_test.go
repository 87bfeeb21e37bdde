package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Preventive Care", "preventive-care"},
		{"Restorative Dentistry", "restorative-dentistry"},
		{"Kids' Dentistry!!", "kids-dentistry"},
		{"  Cosmetic   Dentistry  ", "cosmetic-dentistry"},
		{"TMJ & Jaw Pain", "tmj-jaw-pain"},
		{"already-a-slug", "already-a-slug"},
		{"Mixed-Case Hyphen-Name", "mixed-case-hyphen-name"},
		{"a -- b", "a-b"},
		{"--leading and trailing--", "leading-and-trailing"},
		{"", ""},
		{"!!!", ""},
		{"Teeth Cleaning 101", "teeth-cleaning-101"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMake_Idempotent(t *testing.T) {
	inputs := []string{"Kids' Dentistry!!", "Preventive Care", "a -- b"}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
