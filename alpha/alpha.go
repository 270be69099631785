// C:\Users\wasab\OneDrive\デスクトップ\BARCODE\alpha\alpha.go
package alpha

import (
	"errors"
	"fmt"
)

// Size はアルファベット(A-Z)の文字数です。
const Size = 26

// MaxWidth は扱えるコード長の上限です。26^6 は32bit intに収まります。
const MaxWidth = 6

var (
	ErrMalformedCode     = errors.New("malformed code")
	ErrOrdinalOutOfRange = errors.New("ordinal out of range")
	ErrInvalidWidth      = errors.New("invalid code width")
)

// Span は指定幅のコードが表現できる序数の個数 (26^width) を返します。
func Span(width int) (int, error) {
	if width < 1 || width > MaxWidth {
		return 0, fmt.Errorf("%w: %d (1..%d)", ErrInvalidWidth, width, MaxWidth)
	}
	n := 1
	for i := 0; i < width; i++ {
		n *= Size
	}
	return n, nil
}

// IsLetter は c が A-Z であるかを返します。
func IsLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// CodeFromOrdinal は1始まりの序数を width 桁のコードに変換します。
// 例: (1, 2) → "AA", (676, 2) → "ZZ"
func CodeFromOrdinal(ordinal, width int) (string, error) {
	span, err := Span(width)
	if err != nil {
		return "", err
	}
	if ordinal < 1 || ordinal > span {
		return "", fmt.Errorf("%w: %d not in [1, %d]", ErrOrdinalOutOfRange, ordinal, span)
	}

	buf := make([]byte, width)
	value := ordinal - 1
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('A' + value%Size)
		value /= Size
	}
	return string(buf), nil
}

// OrdinalFromCode はコードを1始まりの序数に変換します。桁数はコード長で決まります。
func OrdinalFromCode(code string) (int, error) {
	if code == "" {
		return 0, fmt.Errorf("%w: empty", ErrMalformedCode)
	}
	if len(code) > MaxWidth {
		return 0, fmt.Errorf("%w: %q longer than %d", ErrMalformedCode, code, MaxWidth)
	}

	value := 0
	for i := 0; i < len(code); i++ {
		c := code[i]
		if !IsLetter(c) {
			return 0, fmt.Errorf("%w: invalid character %q at position %d", ErrMalformedCode, c, i)
		}
		value = value*Size + int(c-'A')
	}
	return value + 1, nil
}

// Validate はコードが width 桁の A-Z 文字列であるかを検査します。
func Validate(code string, width int) error {
	if len(code) != width {
		return fmt.Errorf("%w: %q must be %d letters", ErrMalformedCode, code, width)
	}
	for i := 0; i < len(code); i++ {
		if !IsLetter(code[i]) {
			return fmt.Errorf("%w: invalid character %q at position %d", ErrMalformedCode, code[i], i)
		}
	}
	return nil
}
