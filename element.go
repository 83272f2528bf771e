package timeago

import (
	"strings"
	"sync"
	"time"
)

// Element is a rendering target bound to a scheduler.
type Element interface {
	// Timestamp returns the reference time, or an error when the source
	// value cannot be parsed.
	Timestamp() (time.Time, error)
	// OriginalText returns the text shown before binding. It is read once
	// and displayed again once the ceiling is crossed.
	OriginalText() string
	SetText(text string)
}

// Node is an in-memory element shaped like an HTML <time> or <abbr> tag.
// The timestamp comes from Datetime on "time" nodes and from Title
// otherwise.
type Node struct {
	mu       sync.RWMutex
	tag      string
	datetime string
	title    string
	content  string
}

var _ Element = &Node{}

// NewNode builds a node. tag is matched case-insensitively.
func NewNode(tag, datetime, title, content string) *Node {
	return &Node{
		tag:      strings.ToLower(strings.TrimSpace(tag)),
		datetime: datetime,
		title:    title,
		content:  content,
	}
}

// NewTimeNode builds a <time datetime="..."> node.
func NewTimeNode(datetime, content string) *Node {
	return NewNode("time", datetime, "", content)
}

func (n *Node) Timestamp() (time.Time, error) {
	n.mu.RLock()
	source := n.title
	if n.tag == "time" {
		source = n.datetime
	}
	n.mu.RUnlock()

	return Parse(source)
}

// OriginalText returns the trimmed content and copies it into the title.
// Empty content leaves the existing title as the original text.
func (n *Node) OriginalText() string {
	n.mu.Lock()
	defer n.mu.Unlock()

	text := strings.TrimSpace(n.content)
	if text != "" {
		n.title = text
	}
	return n.title
}

func (n *Node) SetText(text string) {
	n.mu.Lock()
	n.content = text
	n.mu.Unlock()
}

// Text returns the displayed content.
func (n *Node) Text() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.content
}

// Title returns the title attribute.
func (n *Node) Title() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.title
}
