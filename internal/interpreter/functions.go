package interpreter

import (
	"math"

	"github.com/leonardinius/mathexpr/internal/calcerrors"
)

type nativeFunction func(arg float64) (float64, error)

// builtins must cover every function name the scanner recognises.
var builtins = map[string]nativeFunction{
	"sin":  checked(math.Sin),
	"cos":  checked(math.Cos),
	"tan":  checked(math.Tan),
	"asin": checked(math.Asin),
	"acos": checked(math.Acos),
	"atan": checked(math.Atan),
	"sqrt": sqrt,
	"abs":  checked(math.Abs),
	"log":  checked(math.Log10),
	"ln":   checked(math.Log),
}

func checked(fn func(float64) float64) nativeFunction {
	return func(arg float64) (float64, error) {
		result := fn(arg)
		if !isFinite(result) {
			return 0, calcerrors.ErrEvalOutOfDomain
		}
		return result, nil
	}
}

func sqrt(arg float64) (float64, error) {
	if arg < 0 {
		return 0, calcerrors.ErrEvalNegativeSqrt
	}
	return math.Sqrt(arg), nil
}
