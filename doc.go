/*
Package wordtree provides a prefix tree for storing words and answering three kinds
of question about them: whether a string is a stored word, which symbols may follow
a prefix, and which stored words have a given length.

Words are kept as paths of Letter symbols below a BeginWord root, each closed by an
EndWord marker, so a stored word is told apart from a mere prefix of a longer one.
Children are kept in insertion order and that order is reflected by Suggest and
FindWordsOfLength. Input is stored exactly as given: there is no case folding or
normalisation.

Word lists can be loaded from line oriented text with BuildFromFile, BuildFromReader
or InsertFrom.
*/
package wordtree
