package trie

// Node represents a node in the trie
type Node struct {
	// children maps the next character to the child node
	children map[rune]*Node

	// isEnd marks if the path to this node spells a stored word
	isEnd bool
}

// newNode creates a new trie node
func newNode() *Node {
	return &Node{
		children: make(map[rune]*Node),
	}
}

// Trie is a set of words stored as a prefix tree keyed by rune.
// It is not safe for concurrent mutation; once loading is done it can be
// read from any number of goroutines.
type Trie struct {
	root *Node
	size int
}

// New creates a new empty trie
func New() *Trie {
	return &Trie{
		root: newNode(),
	}
}

// Len returns the number of distinct words stored in the trie
func (t *Trie) Len() int {
	return t.size
}
