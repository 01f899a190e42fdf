package wordtree

import (
	"fmt"
	"strings"
)

func Example() {
	t := New()
	t.Insert("but", "butt", "bun", "abs", "absolute")

	fmt.Println(t.Search("abs"), t.Search("absol"))

	suggestions, ok := t.Suggest("bu")
	fmt.Println(suggestions, ok)

	suggestions, ok = t.Suggest("abs")
	fmt.Println(suggestions, ok)

	_, ok = t.Suggest("x")
	fmt.Println(ok)

	// Output:
	// true false
	// [t n] true
	// [$ o] true
	// false
}

func Example_wordsOfLength() {
	t := New()
	t.Insert("r", "rust", "java", "javascript", "jquery", "typescript", "c", "c++", "go", "python", "perl")

	fmt.Println(t.FindWordsOfLength(1))
	fmt.Println(t.FindWordsOfLength(4))
	fmt.Println(t.FindWordsOfLength(10))

	// Output:
	// [r c]
	// [rust java perl]
	// [javascript typescript]
}

func ExampleBuildFromReader() {
	t, err := BuildFromReader(strings.NewReader("teatime\nteapot\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(t.Search("teati"), t.Search("teatime"), t.Len())

	// Output:
	// false true 2
}
