package domain

import (
	"fmt"
	"strings"
)

// MarkdownLink is the published-image reference returned by a successful
// publish. It is derived once and never mutated.
type MarkdownLink string

// NewMarkdownLink builds the image link for the resized copy's expected
// published URL: ![caption](baseURL/issueID/fileName).
func NewMarkdownLink(caption, baseURL, issueID, fileName string) MarkdownLink {
	return MarkdownLink(fmt.Sprintf("![%s](%s/%s/%s)", caption, strings.TrimRight(baseURL, "/"), issueID, fileName))
}

func (l MarkdownLink) String() string {
	return string(l)
}
