package frontmatter

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for front-matter parsing.
var (
	// ErrUnclosed is returned when an opening fence has no closing fence.
	ErrUnclosed = errors.New("front matter not closed")

	// ErrDecode is returned when the fenced block cannot be decoded.
	ErrDecode = errors.New("front matter decode error")
)

// Fence delimiters. A "---" fence holds YAML, a "+++" fence holds TOML.
const (
	yamlFence = "---"
	tomlFence = "+++"
)

// Page is a parsed page source: the front-matter values and the body that
// follows the closing fence.
type Page struct {
	// Data holds the decoded front-matter values. Empty (non-nil) when the
	// source carries no front matter.
	Data map[string]any

	// Content is the page body with leading and trailing blank lines
	// trimmed.
	Content string
}

// Parse splits a page source into front matter and body. The source must
// open with a fence on its first line for front matter to be recognized;
// otherwise the whole source becomes the Content of a page with empty Data.
func Parse(src []byte) (*Page, error) {
	fence := openingFence(src)
	if fence == "" {
		return &Page{
			Data:    map[string]any{},
			Content: strings.TrimSpace(string(src)),
		}, nil
	}

	block, body, err := splitFenced(src, fence)
	if err != nil {
		return nil, err
	}

	data := map[string]any{}
	switch fence {
	case tomlFence:
		if err := toml.Unmarshal([]byte(block), &data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	default:
		if err := yaml.Unmarshal([]byte(block), &data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}

	return &Page{
		Data:    data,
		Content: strings.TrimSpace(body),
	}, nil
}

// openingFence reports which fence the source opens with, or "".
func openingFence(src []byte) string {
	for _, fence := range []string{yamlFence, tomlFence} {
		if !bytes.HasPrefix(src, []byte(fence)) {
			continue
		}
		// The fence must be the whole first line.
		rest := src[len(fence):]
		if len(rest) == 0 || rest[0] == '\n' || bytes.HasPrefix(rest, []byte("\r\n")) {
			return fence
		}
	}
	return ""
}

// splitFenced separates the fenced block from the body that follows the
// closing fence.
func splitFenced(src []byte, fence string) (block, body string, err error) {
	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var blockLines []string
	var bodyLines []string
	inBlock := false
	closed := false

	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			inBlock = true
			continue
		}
		if inBlock && strings.TrimRight(line, " \t") == fence {
			inBlock = false
			closed = true
			continue
		}
		if inBlock {
			blockLines = append(blockLines, line)
		} else {
			bodyLines = append(bodyLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", "", fmt.Errorf("scan source: %w", err)
	}
	if !closed {
		return "", "", fmt.Errorf("%w: missing %q", ErrUnclosed, fence)
	}

	return strings.Join(blockLines, "\n"), strings.Join(bodyLines, "\n"), nil
}
