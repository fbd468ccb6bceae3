package httpx

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// CleanText strips markup from user-supplied text and returns it as plain
// text, so "Tom & Jerry" is stored as typed. Entity-encoded markup such as
// "&lt;b&gt;" is decoded and stripped as well.
func CleanText(s string) string {
	for i := 0; i < 4; i++ {
		out := html.UnescapeString(strict.Sanitize(s))
		if out == s {
			return out
		}
		s = out
	}
	return strict.Sanitize(s)
}
