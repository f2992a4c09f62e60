package utils

import (
	"testing"
	"time"
)

func TestUserDetailsValid(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"valid", "user@example.com", "longenoughpassword", true},
		{"exactly twelve chars", "user@example.com", "abcdefghijkl", true},
		{"short password", "user@example.com", "short", false},
		{"eleven chars", "user@example.com", "abcdefghijk", false},
		{"missing at sign", "userexample.com", "longenoughpassword", false},
		{"missing domain dot", "user@examplecom", "longenoughpassword", false},
		{"empty email", "", "longenoughpassword", false},
		{"empty password", "user@example.com", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := UserDetailsValid(tc.email, tc.password); got != tc.want {
				t.Errorf("UserDetailsValid(%q, ...) = %v, want %v", tc.email, got, tc.want)
			}
		})
	}
}

func TestDateValid(t *testing.T) {
	valid := []string{"2024-01-01", "2024-12-31", "2024-1-1", "1999-02-30", "2024-01-9"}
	for _, d := range valid {
		if !DateValid(d) {
			t.Errorf("DateValid(%q) = false, want true", d)
		}
	}

	invalid := []string{"", "2024-13-01", "2024-00-01", "2024-01-32", "2024-01-00", "24-01-01", "2024/01/01", "2024-01-01T00:00:00"}
	for _, d := range invalid {
		if DateValid(d) {
			t.Errorf("DateValid(%q) = true, want false", d)
		}
	}
}

func TestParseDay(t *testing.T) {
	cases := []struct {
		name string
		date string
		want time.Time
	}{
		{"padded", "2024-01-05", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"unpadded", "2024-1-5", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"feb 30 rolls over to march 1", "2024-02-30", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"april 31 rolls over to may 1", "2024-04-31", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseDay(tc.date); !got.Equal(tc.want) {
				t.Errorf("ParseDay(%q) = %v, want %v", tc.date, got, tc.want)
			}
		})
	}
}
