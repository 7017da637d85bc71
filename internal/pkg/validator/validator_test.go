package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-06-15"); !ok {
		t.Error("IsValidDate(2024-06-15) = false, want true")
	}
	if _, ok := IsValidDate("15/06/2024"); ok {
		t.Error("IsValidDate(15/06/2024) = true, want false")
	}
}

func TestIsValidAccountCode(t *testing.T) {
	valid := []string{"5141", "61250", "34210000"}
	invalid := []string{"", "51", "abc1", "123456789"}
	for _, code := range valid {
		if !IsValidAccountCode(code) {
			t.Errorf("IsValidAccountCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidAccountCode(code) {
			t.Errorf("IsValidAccountCode(%q) = true, want false", code)
		}
	}
}
