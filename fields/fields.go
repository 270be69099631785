// C:\Users\wasab\OneDrive\デスクトップ\BARCODE\fields\fields.go
package fields

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"barcodebuilder/alpha"
)

// Name はバーコードのフィールド名です。
type Name string

const (
	Capacity Name = "capacity"
	Year     Name = "year"
	Lot      Name = "lot"
	Series   Name = "series"
)

// Names はバーコード上の並び順です。
var Names = []Name{Capacity, Year, Lot, Series}

var (
	ErrDomainOutOfRange = errors.New("domain value out of range")
	ErrUnknownField     = errors.New("unknown field")
)

// FieldError はフィールド単位の変換エラーです。Err は種別 (errors.Is で判定)。
type FieldError struct {
	Field Name
	Input string
	Err   error
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Input, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// WidthOf はフィールドの桁数を返します。桁数はスキームに依らず固定です。
func WidthOf(name Name) (int, error) {
	switch name {
	case Capacity, Year:
		return 1, nil
	case Lot:
		return 2, nil
	case Series:
		return 3, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Option は選択リストの1行です。
type Option struct {
	Code  string
	Value int64
	Label string
}

// Info はフィールドの説明情報です。Position はバーコード上の1始まりの位置。
// Note はコード表が未確認であることなど、利用者への注意書きです (無ければ空)。
type Info struct {
	Title       string
	Description string
	Position    int
	Width       int
	Note        string
}

// Field はコード文字列とドメイン値 (容量バイト数、西暦、ロット番号、シリーズ番号) の対応です。
type Field struct {
	name  Name
	width int
	span  int
	info  Info

	value   func(ordinal int) (int64, bool)
	ordinal func(v int64) (int, bool)
	label   func(v int64) string
}

func (f *Field) Name() Name { return f.name }
func (f *Field) Width() int { return f.width }

// Span は有効な序数の個数 (26^width) です。
func (f *Field) Span() int { return f.span }

func (f *Field) Info() Info { return f.info }

// Encode はドメイン値をコードに変換します。
func (f *Field) Encode(v int64) (string, error) {
	n, ok := f.ordinal(v)
	if !ok {
		return "", &FieldError{Field: f.name, Input: strconv.FormatInt(v, 10), Err: ErrDomainOutOfRange}
	}
	return f.Code(n)
}

// Decode はコードをドメイン値に変換します。
func (f *Field) Decode(code string) (int64, error) {
	n, err := f.Ordinal(code)
	if err != nil {
		return 0, err
	}
	v, ok := f.value(n)
	if !ok {
		return 0, &FieldError{Field: f.name, Input: code, Err: alpha.ErrOrdinalOutOfRange}
	}
	return v, nil
}

// Code は序数をこのフィールドの桁数のコードに変換します。
func (f *Field) Code(ordinal int) (string, error) {
	code, err := alpha.CodeFromOrdinal(ordinal, f.width)
	if err != nil {
		return "", &FieldError{Field: f.name, Input: strconv.Itoa(ordinal), Err: err}
	}
	return code, nil
}

// Ordinal はコードの桁数と文字種を検査して序数を返します。
func (f *Field) Ordinal(code string) (int, error) {
	if err := alpha.Validate(code, f.width); err != nil {
		return 0, &FieldError{Field: f.name, Input: code, Err: err}
	}
	n, err := alpha.OrdinalFromCode(code)
	if err != nil {
		return 0, &FieldError{Field: f.name, Input: code, Err: err}
	}
	return n, nil
}

// Label はドメイン値の表示用文字列を返します。
func (f *Field) Label(v int64) string {
	return f.label(v)
}

// Options は全序数を順に列挙した選択リストを返します。
func (f *Field) Options() []Option {
	opts := make([]Option, 0, f.span)
	for n := 1; n <= f.span; n++ {
		code, err := alpha.CodeFromOrdinal(n, f.width)
		if err != nil {
			break
		}
		v, ok := f.value(n)
		if !ok {
			continue
		}
		opts = append(opts, Option{Code: code, Value: v, Label: f.label(v)})
	}
	return opts
}

// ロット・シリーズ番号は桁区切りで表示する (例: "Series #17,576")
var printer = message.NewPrinter(language.English)

func newField(name Name, info Info, value func(int) (int64, bool), ordinal func(int64) (int, bool), label func(int64) string) *Field {
	width, err := WidthOf(name)
	if err != nil {
		panic(err)
	}
	span, err := alpha.Span(width)
	if err != nil {
		panic(err)
	}
	info.Width = width
	return &Field{
		name:    name,
		width:   width,
		span:    span,
		info:    info,
		value:   value,
		ordinal: ordinal,
		label:   label,
	}
}

// newSequenceField はロット・シリーズのように序数がそのまま値になるフィールドです。
func newSequenceField(name Name, info Info, labelFormat string) *Field {
	var f *Field
	f = newField(name, info,
		func(n int) (int64, bool) {
			return int64(n), n >= 1 && n <= f.span
		},
		func(v int64) (int, bool) {
			return int(v), v >= 1 && v <= int64(f.span)
		},
		func(v int64) string {
			return printer.Sprintf(labelFormat, v)
		},
	)
	return f
}
