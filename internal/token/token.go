package token

import (
	"fmt"
)

// Token represents a lexical token.
//
// Text is the exact source text of the token. Name is the lower-cased
// identifier for Function and Constant tokens (π is normalised to "pi").
// Value is set for Number and Constant tokens only.
type Token struct {
	Kind  Kind
	Text  string
	Name  string
	Value float64
	Pos   int
}

func NewToken(kind Kind, text string, pos int) Token {
	return Token{
		Kind: kind,
		Text: text,
		Pos:  pos,
	}
}

func NewNumberToken(text string, value float64, pos int) Token {
	return Token{Kind: Number, Text: text, Value: value, Pos: pos}
}

func NewFunctionToken(text, name string, pos int) Token {
	return Token{Kind: Function, Text: text, Name: name, Pos: pos}
}

func NewConstantToken(text, name string, value float64, pos int) Token {
	return Token{Kind: Constant, Text: text, Name: name, Value: value, Pos: pos}
}

func NewTokenHeap(kind Kind, text string, pos int) *Token {
	tt := NewToken(kind, text, pos)
	return &tt
}

// HasValue reports whether the token carries a numeric value.
func (t Token) HasValue() bool {
	return t.Kind == Number || t.Kind == Constant
}

// String implements fmt.Stringer.
func (t Token) String() string {
	if t.HasValue() {
		return fmt.Sprintf("%s %s %v", t.Kind, t.Text, t.Value)
	}
	return fmt.Sprintf("%s %s", t.Kind, t.Text)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	if t.HasValue() {
		return fmt.Sprintf("{Kind: %s, Text: %q, Value: %v, Pos: %d}", t.Kind, t.Text, t.Value, t.Pos)
	}
	return fmt.Sprintf("{Kind: %s, Text: %q, Pos: %d}", t.Kind, t.Text, t.Pos)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
