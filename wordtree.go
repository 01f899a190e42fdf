package wordtree

// WordTree stores words as paths from a Begin root down to an End marker. Words
// sharing a prefix share the nodes for that prefix.
//
// A WordTree only grows. Reads may run concurrently with each other, but Insert
// must not run concurrently with anything; callers that need that hold their own
// sync.RWMutex around the tree.
type WordTree struct {
	root  *node[Symbol]
	words int
}

// WalkFunc is called by Walk for every stored word. Returning a non-nil error
// stops the walk.
type WalkFunc func(word string) error

// New creates an empty tree.
func New() *WordTree {
	return &WordTree{root: newNode(BeginWord)}
}

// Insert adds words to the tree. Inserting a word that is already stored leaves
// the tree unchanged. The empty string is a valid word.
func (t *WordTree) Insert(words ...string) {
	for _, word := range words {
		t.insert(word)
	}
}

func (t *WordTree) insert(word string) {
	current := t.root
	for _, character := range word {
		current = current.child(current.navigateTo(Letter(character)))
	}
	if _, ok := current.findChildIndex(EndWord); !ok {
		current.navigateTo(EndWord)
		t.words++
	}
}

// Len returns the number of distinct words stored.
func (t *WordTree) Len() int {
	return t.words
}

// Search reports whether word was inserted. A string that is only a prefix of
// stored words does not match: with just "teatime" stored, "teati" is not found.
func (t *WordTree) Search(word string) bool {
	current, ok := t.descend(word)
	if !ok {
		return false
	}
	_, ok = current.findChildIndex(EndWord)
	return ok
}

// Suggest returns the symbols that may follow base, in the order they were first
// inserted. EndWord among them means base is itself a stored word.
//
// ok is false when no stored word starts with base. A base that is valid but has
// nothing after it yields an empty, non-nil slice.
func (t *WordTree) Suggest(base string) (suggestions []Symbol, ok bool) {
	current, ok := t.descend(base)
	if !ok {
		return nil, false
	}
	suggestions = make([]Symbol, 0, len(current.children))
	for _, child := range current.children {
		suggestions = append(suggestions, child.value)
	}
	return suggestions, true
}

// descend follows the letters of prefix from the root.
func (t *WordTree) descend(prefix string) (*node[Symbol], bool) {
	current := t.root
	for _, character := range prefix {
		idx, ok := current.findChildIndex(Letter(character))
		if !ok {
			return nil, false
		}
		current = current.child(idx)
	}
	return current, true
}

// FindWordsOfLength returns every stored word that is exactly n characters long,
// in depth-first insertion order rather than lexicographic order.
func (t *WordTree) FindWordsOfLength(n int) []string {
	words := []string{}
	if n < 0 {
		return words
	}
	// one extra hop reaches the End marker
	return collectOfLength(t.root, n+1, make([]rune, 0, n), words)
}

// collectOfLength appends to words every completion below n that uses up exactly
// budget hops, prefix holding the letters seen so far.
func collectOfLength(n *node[Symbol], budget int, prefix []rune, words []string) []string {
	switch n.value.Kind() {
	case KindEnd:
		if budget == 0 {
			words = append(words, string(prefix))
		}
		return words
	case KindLetter:
		prefix = append(prefix, n.value.Rune())
	}
	if budget <= 0 {
		return words
	}
	for _, child := range n.children {
		words = collectOfLength(child, budget-1, prefix, words)
	}
	return words
}

// Walk calls fn for every stored word in depth-first insertion order.
func (t *WordTree) Walk(fn WalkFunc) error {
	return walk(t.root, make([]rune, 0, 16), fn)
}

func walk(n *node[Symbol], prefix []rune, fn WalkFunc) error {
	switch n.value.Kind() {
	case KindEnd:
		return fn(string(prefix))
	case KindLetter:
		prefix = append(prefix, n.value.Rune())
	}
	for _, child := range n.children {
		if err := walk(child, prefix, fn); err != nil {
			return err
		}
	}
	return nil
}
