package extract

import (
	"strings"
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"plain address", "john.doe@example.com", "john.doe@example.com", true},
		{"embedded in sentence", "you can reach me at Foo.Bar@Example.COM thanks", "foo.bar@example.com", true},
		{"upper case lowered", "JOHN@EXAMPLE.COM", "john@example.com", true},
		{"plus tag", "dev+hiring@company.co.uk", "dev+hiring@company.co.uk", true},
		{"no address", "just some text", "", false},
		{"double at", "a@@b.com", "", false},
		{"missing domain dot", "user@localhost", "", false},
		{"local too long", strings.Repeat("a", 65) + "@example.com", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Email(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Email(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{"bare ten digits", "5551234567", "(555) 123-4567", true},
		{"eleven digits leading one", "15551234567", "+1 (555) 123-4567", true},
		{"domestic format", "(555) 123-4567", "(555) 123-4567", true},
		{"dashes", "call me at 555-123-4567 anytime", "(555) 123-4567", true},
		{"dots", "555.123.4567", "(555) 123-4567", true},
		{"plus one prefix", "+1-555-123-4567", "+1 (555) 123-4567", true},
		{"too short", "123456789", "", false},
		{"no digits", "no phone here", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Phone(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Phone(%q) = (%q, %v), want (%q, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"decimal", "3.5", 3.5, true},
		{"integer in sentence", "I have 5 years of experience", 5, true},
		{"zero", "0", 0, true},
		{"upper bound", "50", 50, true},
		{"first numeral wins", "2 jobs over 10 years", 2, true},
		{"out of range", "I've worked 60 years", 0, false},
		{"fresh keyword", "I'm a fresh graduate", 0, true},
		{"beginner keyword", "complete beginner here", 0, true},
		{"intern keyword", "currently doing an internship", 0.5, true},
		{"no signal", "quite a while", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Experience(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Experience(%q) = (%v, %v), want (%v, %v)", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"strips markup chars", `<script>alert("hi")</script>`, "scriptalert(hi)/script"},
		{"collapses whitespace", "a  b\t\n c", "a b c"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.text); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}

	long := strings.Repeat("x", 1500)
	if got := Sanitize(long); len(got) != 1000 {
		t.Errorf("Sanitize long input: len = %d, want 1000", len(got))
	}

	once := Sanitize(`  "quoted"  <tagged>  text  `)
	if twice := Sanitize(once); twice != once {
		t.Errorf("Sanitize not idempotent: %q != %q", twice, once)
	}
}

func TestIsFiller(t *testing.T) {
	fillers := []string{"nothing", " NO ", "N/A", "I don't know", "whatever", "idk"}
	for _, text := range fillers {
		if !IsFiller(text) {
			t.Errorf("IsFiller(%q) = false, want true", text)
		}
	}
	answers := []string{"Software Engineer", "nothing special", "Go and Postgres", ""}
	for _, text := range answers {
		if IsFiller(text) {
			t.Errorf("IsFiller(%q) = true, want false", text)
		}
	}
}
