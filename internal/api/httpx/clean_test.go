package httpx

import "testing"

func TestCleanText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Water Lilies", "Water Lilies"},
		{"Tom & Jerry", "Tom & Jerry"},
		{"a < b", "a < b"},
		{"<b>Night</b><script>x()</script>", "Night"},
		{"&lt;script&gt;alert(1)&lt;/script&gt;ok", "ok"},
		{"caf&eacute;", "café"},
	}
	for _, c := range cases {
		if got := CleanText(c.in); got != c.want {
			t.Errorf("CleanText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
