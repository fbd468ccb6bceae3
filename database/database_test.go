package database

import "testing"

func TestWithForeignKeys(t *testing.T) {
	cases := map[string]string{
		"market.db":                               "market.db?_foreign_keys=on",
		"market.db?_busy_timeout=5000":            "market.db?_busy_timeout=5000&_foreign_keys=on",
		"market.db?_foreign_keys=off":             "market.db?_foreign_keys=off",
		"file:market.db?_fk=1&_busy_timeout=5000": "file:market.db?_fk=1&_busy_timeout=5000",
	}
	for in, want := range cases {
		if got := withForeignKeys(in); got != want {
			t.Errorf("withForeignKeys(%q) = %q, want %q", in, got, want)
		}
	}
}
