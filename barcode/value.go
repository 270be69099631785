package barcode

import (
	"fmt"

	"barcodebuilder/fields"
)

// Barcode は組み立て済みのバーコードです。値型で、変更は With で新しい値を作ります。
// チェックデジットは常にコードから再計算され、外から設定することはできません。
type Barcode struct {
	parts Parts
}

// Values はバーコードが表すドメイン値です。
type Values struct {
	Capacity int64 // バイト数
	Year     int
	Lot      int
	Series   int
}

// Default は各フィールドの先頭コード (A, A, AA, AAA) のバーコードを返します。
func Default() Barcode {
	return newBarcode(Parts{Capacity: "A", Year: "A", Lot: "AA", Series: "AAA"})
}

func newBarcode(p Parts) Barcode {
	p.CheckDigit = CheckDigit(p.Prefix())
	return Barcode{parts: p}
}

// FromValues は各ドメイン値をエンコードしてバーコードを作ります。
func FromValues(s *fields.Scheme, v Values) (Barcode, error) {
	var p Parts
	var err error
	if p.Capacity, err = s.Encode(fields.Capacity, v.Capacity); err != nil {
		return Barcode{}, err
	}
	if p.Year, err = s.Encode(fields.Year, int64(v.Year)); err != nil {
		return Barcode{}, err
	}
	if p.Lot, err = s.Encode(fields.Lot, int64(v.Lot)); err != nil {
		return Barcode{}, err
	}
	if p.Series, err = s.Encode(fields.Series, int64(v.Series)); err != nil {
		return Barcode{}, err
	}
	return newBarcode(p), nil
}

// With は1フィールドのコードを差し替えた新しいバーコードを返します。
// ゼロ値には差し替える元のコードが無いため ErrMalformedBarcode を返します。
func (b Barcode) With(name fields.Name, code string) (Barcode, error) {
	if b.IsZero() {
		return Barcode{}, fmt.Errorf("%w: zero Barcode, start from Default or Parse", ErrMalformedBarcode)
	}
	if err := validateCode(name, code); err != nil {
		return Barcode{}, err
	}
	p := b.parts
	switch name {
	case fields.Capacity:
		p.Capacity = code
	case fields.Year:
		p.Year = code
	case fields.Lot:
		p.Lot = code
	case fields.Series:
		p.Series = code
	}
	return newBarcode(p), nil
}

// WithValue はドメイン値で1フィールドを差し替えます。
func (b Barcode) WithValue(s *fields.Scheme, name fields.Name, v int64) (Barcode, error) {
	code, err := s.Encode(name, v)
	if err != nil {
		return Barcode{}, err
	}
	return b.With(name, code)
}

// Code はフィールドのコードを返します。
func (b Barcode) Code(name fields.Name) (string, error) {
	switch name {
	case fields.Capacity:
		return b.parts.Capacity, nil
	case fields.Year:
		return b.parts.Year, nil
	case fields.Lot:
		return b.parts.Lot, nil
	case fields.Series:
		return b.parts.Series, nil
	}
	return "", fmt.Errorf("%w: %q", fields.ErrUnknownField, name)
}

// Values は各コードをデコードしたドメイン値を返します。
func (b Barcode) Values(s *fields.Scheme) (Values, error) {
	var v Values
	capacity, err := s.Decode(fields.Capacity, b.parts.Capacity)
	if err != nil {
		return Values{}, err
	}
	year, err := s.Decode(fields.Year, b.parts.Year)
	if err != nil {
		return Values{}, err
	}
	lot, err := s.Decode(fields.Lot, b.parts.Lot)
	if err != nil {
		return Values{}, err
	}
	series, err := s.Decode(fields.Series, b.parts.Series)
	if err != nil {
		return Values{}, err
	}
	v.Capacity = capacity
	v.Year = int(year)
	v.Lot = int(lot)
	v.Series = int(series)
	return v, nil
}

func (b Barcode) Parts() Parts        { return b.parts }
func (b Barcode) CapacityCode() string { return b.parts.Capacity }
func (b Barcode) YearCode() string     { return b.parts.Year }
func (b Barcode) LotCode() string      { return b.parts.Lot }
func (b Barcode) SeriesCode() string   { return b.parts.Series }
func (b Barcode) CheckDigit() string   { return b.parts.CheckDigit }

// IsZero はゼロ値 (未組み立て) かどうかを返します。
func (b Barcode) IsZero() bool { return b.parts == Parts{} }

func (b Barcode) String() string {
	return b.parts.Prefix() + b.parts.CheckDigit
}
