package htmlview

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// PlainText parses an HTML document and returns its visible text, one
// block element per line with blank lines removed. It is used to feed
// saved web pages and exported question banks to the importer.
func PlainText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	root := findElement(doc, "body")
	if root == nil {
		root = doc
	}

	var lines []string
	for _, line := range strings.Split(textContent(root), "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
