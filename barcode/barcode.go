// C:\Users\wasab\OneDrive\デスクトップ\BARCODE\barcode\barcode.go
package barcode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"

	"barcodebuilder/alpha"
	"barcodebuilder/fields"
)

// Length はバーコード全体の桁数です。
const Length = 8

// 各コードの開始位置 (0始まり)
const (
	capacityOffset = 0
	yearOffset     = 1
	lotOffset      = 2
	seriesOffset   = 4
	checkOffset    = 7
)

var (
	ErrMalformedBarcode   = errors.New("malformed barcode")
	ErrCheckDigitMismatch = errors.New("check digit mismatch")

	ErrDomainOutOfRange  = fields.ErrDomainOutOfRange
	ErrUnknownField      = fields.ErrUnknownField
	ErrMalformedCode     = alpha.ErrMalformedCode
	ErrOrdinalOutOfRange = alpha.ErrOrdinalOutOfRange
)

// Parts はバーコードを固定位置で切り出した結果を格納します
type Parts struct {
	Capacity   string // 1桁目 容量
	Year       string // 2桁目 製造年
	Lot        string // 3-4桁目 ロット
	Series     string // 5-7桁目 シリーズ
	CheckDigit string // 8桁目 チェックデジット
}

// Prefix はチェックデジットを除いた7桁です。
func (p Parts) Prefix() string {
	return p.Capacity + p.Year + p.Lot + p.Series
}

// CheckDigit は文字コードの合計を10で割った余りを1桁の数字で返します。
// 単純な検査用の桁で、すべての入力ミスを検出できるわけではありません。
// 合計はルーン単位です。有効なコードはASCIIのみなのでUTF-16単位の合計と一致します。
func CheckDigit(prefix string) string {
	sum := 0
	for _, r := range prefix {
		sum += int(r)
	}
	return strconv.Itoa(sum % 10)
}

// Split は8桁のバーコードを各コードに分割します。
// ASCII以外の文字は拒否しますが、英字かどうかは検査しません。
func Split(code string) (Parts, error) {
	for i := 0; i < len(code); i++ {
		if code[i] >= utf8.RuneSelf {
			return Parts{}, fmt.Errorf("%w: %q contains non-ASCII characters", ErrMalformedBarcode, code)
		}
	}
	if len(code) != Length {
		return Parts{}, fmt.Errorf("%w: %q is %d characters, want %d", ErrMalformedBarcode, code, len(code), Length)
	}
	return Parts{
		Capacity:   code[capacityOffset:yearOffset],
		Year:       code[yearOffset:lotOffset],
		Lot:        code[lotOffset:seriesOffset],
		Series:     code[seriesOffset:checkOffset],
		CheckDigit: code[checkOffset:],
	}, nil
}

// Assemble は4つのコードを連結し、チェックデジットを付けた8桁を返します。
func Assemble(capacity, year, lot, series string) (string, error) {
	p := Parts{Capacity: capacity, Year: year, Lot: lot, Series: series}
	if err := p.validateCodes(); err != nil {
		return "", err
	}
	prefix := p.Prefix()
	return prefix + CheckDigit(prefix), nil
}

// Validate はチェックデジットが先頭7桁から計算した値と一致するかを返します。
func Validate(code string) bool {
	p, err := Split(code)
	if err != nil {
		return false
	}
	return CheckDigit(p.Prefix()) == p.CheckDigit
}

// Parse はバーコードを分割し、各コードとチェックデジットを検査します。
func Parse(code string) (Barcode, error) {
	p, err := Split(code)
	if err != nil {
		return Barcode{}, err
	}
	if err := p.validateCodes(); err != nil {
		return Barcode{}, err
	}
	want := CheckDigit(p.Prefix())
	if p.CheckDigit != want {
		return Barcode{}, fmt.Errorf("%w: %q has %s, want %s", ErrCheckDigitMismatch, code, p.CheckDigit, want)
	}
	return Barcode{parts: p}, nil
}

// Normalize はスキャナーやIMEからの入力を整えます。
// 前後の空白を除き、全角英数字を半角に、小文字を大文字にします。
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = width.Narrow.String(s)
	return strings.ToUpper(s)
}

// ParseScanned は Normalize してから Parse します。
func ParseScanned(s string) (Barcode, error) {
	return Parse(Normalize(s))
}

// EncodeField は既定スキームでドメイン値をコードに変換します。
func EncodeField(name fields.Name, v int64) (string, error) {
	return fields.Default().Encode(name, v)
}

// DecodeField は既定スキームでコードをドメイン値に変換します。
func DecodeField(name fields.Name, code string) (int64, error) {
	return fields.Default().Decode(name, code)
}

func (p Parts) validateCodes() error {
	for _, c := range []struct {
		name fields.Name
		code string
	}{
		{fields.Capacity, p.Capacity},
		{fields.Year, p.Year},
		{fields.Lot, p.Lot},
		{fields.Series, p.Series},
	} {
		if err := validateCode(c.name, c.code); err != nil {
			return err
		}
	}
	return nil
}

func validateCode(name fields.Name, code string) error {
	w, err := fields.WidthOf(name)
	if err != nil {
		return err
	}
	if err := alpha.Validate(code, w); err != nil {
		return &fields.FieldError{Field: name, Input: code, Err: err}
	}
	return nil
}
