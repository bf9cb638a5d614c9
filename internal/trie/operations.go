package trie

import (
	"sort"
)

// Insert adds a word to the trie. Inserting a word twice is a no-op, and
// the empty word marks the root as terminal.
func (t *Trie) Insert(word string) {
	node := t.root
	for _, ch := range word {
		child, exists := node.children[ch]
		if !exists {
			child = newNode()
			node.children[ch] = child
		}
		node = child
	}
	if !node.isEnd {
		node.isEnd = true
		t.size++
	}
}

// Contains reports whether word was inserted. A prefix of a stored word
// that was never inserted itself is not contained.
func (t *Trie) Contains(word string) bool {
	node := t.findNode(word)
	return node != nil && node.isEnd
}

// HasPrefix reports whether any stored word starts with prefix
func (t *Trie) HasPrefix(prefix string) bool {
	return t.findNode(prefix) != nil
}

// findNode returns the node corresponding to the key, or nil if not found
func (t *Trie) findNode(key string) *Node {
	node := t.root
	for _, ch := range key {
		child, exists := node.children[ch]
		if !exists {
			return nil
		}
		node = child
	}
	return node
}

// KeysWithPrefix returns all stored words that start with prefix, in
// lexicographical order
func (t *Trie) KeysWithPrefix(prefix string) []string {
	results := []string{}
	t.Traverse(prefix, func(word string) bool {
		results = append(results, word)
		return true
	})
	return results
}

// TraverseFunc is the type of the function called for each word in the trie.
// If the function returns false, the traversal stops.
type TraverseFunc func(word string) bool

// Traverse visits all words starting with prefix in lexicographical order.
// For each word, it calls the given function. If the function returns false,
// the traversal stops.
func (t *Trie) Traverse(prefix string, f TraverseFunc) {
	node := t.findNode(prefix)
	if node == nil {
		return
	}

	if node.isEnd {
		if !f(prefix) {
			return
		}
	}

	traverseNode(node, prefix, f)
}

// traverseNode recursively walks the children of node in rune order
func traverseNode(node *Node, prefix string, f TraverseFunc) bool {
	children := make([]rune, 0, len(node.children))
	for ch := range node.children {
		children = append(children, ch)
	}
	sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })

	for _, ch := range children {
		child := node.children[ch]
		word := prefix + string(ch)
		if child.isEnd {
			if !f(word) {
				return false
			}
		}

		if !traverseNode(child, word, f) {
			return false
		}
	}

	return true
}
