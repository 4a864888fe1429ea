package calcerrors

// Kind tags the evaluation phase an error was raised in.
type Kind uint8

const (
	KindLex Kind = iota + 1
	KindParse
	KindEval
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "LexError"
	case KindParse:
		return "ParseError"
	case KindEval:
		return "EvalError"
	}
	return "UnknownError"
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the offending character or token.
	// Errors raised at end of input report len(source)+1.
	Pos() int
	// Kind returns the phase the error was raised in.
	Kind() Kind
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
	_ InputError = (*EvalError)(nil)
)
