package token

import "strconv"

type Kind uint8

const (
	Number Kind = iota
	Operator
	Function
	Constant
	LeftParen
	RightParen
)

var kindNames = [...]string{
	Number:     "NUMBER",
	Operator:   "OPERATOR",
	Function:   "FUNCTION",
	Constant:   "CONSTANT",
	LeftParen:  "LEFT_PAREN",
	RightParen: "RIGHT_PAREN",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
