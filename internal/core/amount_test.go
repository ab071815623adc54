package core

import (
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"12.34", "12.34", false},
		{"12,34", "12.34", false},
		{" 100 ", "100", false},
		{"0.01", "0.01", false},
		{"0", "", true},
		{"-5", "", true},
		{"", "", true},
		{"abc", "", true},
		{"12.3.4", "", true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseAmount(%q) expected error, got %s", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.in, err)
		}
		if got.String() != tc.want {
			t.Fatalf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseBudget(t *testing.T) {
	if _, err := ParseBudget("0"); err != nil {
		t.Fatalf("zero budget should be valid, got %v", err)
	}
	if _, err := ParseBudget("1500.50"); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if _, err := ParseBudget("-1"); err == nil {
		t.Fatal("negative budget should be rejected")
	}
	if _, err := ParseBudget(""); err == nil {
		t.Fatal("empty budget should be rejected")
	}
}
