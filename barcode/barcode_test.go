package barcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barcodebuilder/fields"
)

func TestCheckDigit(t *testing.T) {
	// 'A' (65) x 7 = 455
	assert.Equal(t, "5", CheckDigit("AAAAAAA"))
	assert.Equal(t, "0", CheckDigit("DRALBML"))
	assert.Equal(t, CheckDigit("ZZZZZZZ"), CheckDigit("ZZZZZZZ"))
	assert.Equal(t, "0", CheckDigit(""))

	// 有効なコードはASCIIのみなので、ルーン単位でもバイト単位でも合計は同じ
	code, err := Assemble("Z", "Y", "XW", "VUT")
	require.NoError(t, err)
	sum := 0
	for i := 0; i < len(code)-1; i++ {
		sum += int(code[i])
	}
	assert.Equal(t, string(rune('0'+sum%10)), CheckDigit(code[:len(code)-1]))
}

func TestAssemble(t *testing.T) {
	code, err := Assemble("A", "A", "AA", "AAA")
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAA5", code)
	assert.True(t, Validate(code))

	code, err = Assemble("D", "R", "AL", "BML")
	require.NoError(t, err)
	assert.Equal(t, "DRALBML0", code)
}

func TestAssembleRejectsBadCodes(t *testing.T) {
	_, err := Assemble("A", "A", "A", "AAA")
	assert.ErrorIs(t, err, ErrMalformedCode)

	var fe *fields.FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fields.Lot, fe.Field)

	_, err = Assemble("a", "A", "AA", "AAA")
	assert.ErrorIs(t, err, ErrMalformedCode)
}

func TestSplit(t *testing.T) {
	p, err := Split("DRALBML0")
	require.NoError(t, err)
	assert.Equal(t, Parts{Capacity: "D", Year: "R", Lot: "AL", Series: "BML", CheckDigit: "0"}, p)
	assert.Equal(t, "DRALBML", p.Prefix())

	for _, code := range []string{"AB12", "", "AAAAAAA55", "AAAAAé8", "ＡＡＡＡＡＡＡ５"} {
		_, err = Split(code)
		assert.ErrorIs(t, err, ErrMalformedBarcode, "code %q", code)
	}
}

func TestValidateAllFieldCombinations(t *testing.T) {
	s := fields.Default()
	capacity, _ := s.Field(fields.Capacity)
	year, _ := s.Field(fields.Year)
	for _, c := range capacity.Options() {
		for _, y := range year.Options() {
			for _, lot := range []string{"AA", "MN", "ZZ"} {
				for _, series := range []string{"AAA", "QRS", "ZZZ"} {
					code, err := Assemble(c.Code, y.Code, lot, series)
					require.NoError(t, err)
					require.True(t, Validate(code), code)
				}
			}
		}
	}
}

func TestValidateDetectsMutations(t *testing.T) {
	const valid = "DRALBML0"
	detected, total := 0, 0
	for i := 0; i < Length; i++ {
		for c := byte('0'); c <= 'Z'; c++ {
			if c == valid[i] || (c > '9' && c < 'A') {
				continue
			}
			mutated := []byte(valid)
			mutated[i] = c
			total++
			if !Validate(string(mutated)) {
				detected++
			}
		}
	}
	assert.Greater(t, detected, 0)
	assert.Less(t, detected, total)

	// 桁の合計が10の倍数だけ変わる置換は検出できない
	assert.True(t, Validate("NRALBML0"))
	// 合計が変わる置換は検出する
	assert.False(t, Validate("ERALBML0"))
	assert.False(t, Validate("DRALBML1"))
}

func TestValidateMalformed(t *testing.T) {
	assert.False(t, Validate("AB12"))
	assert.False(t, Validate(""))
	assert.False(t, Validate("AAAAAAAX"))

	// 7文字だが8バイトになる入力
	assert.False(t, Validate("AAAAAé8"))
}

func TestParseNonASCII(t *testing.T) {
	_, err := Parse("AAAAAé8")
	assert.ErrorIs(t, err, ErrMalformedBarcode)
	assert.NotContains(t, err.Error(), "Ã")
}

func TestParse(t *testing.T) {
	b, err := Parse("DRALBML0")
	require.NoError(t, err)
	assert.Equal(t, "DRALBML0", b.String())
	assert.Equal(t, "BML", b.SeriesCode())

	_, err = Parse("DRALBML1")
	assert.ErrorIs(t, err, ErrCheckDigitMismatch)

	_, err = Parse("dRALBML0")
	assert.ErrorIs(t, err, ErrMalformedCode)

	_, err = Parse("AB12")
	assert.ErrorIs(t, err, ErrMalformedBarcode)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "DRALBML0", Normalize(" ｄｒａｌｂｍｌ０ "))
	assert.Equal(t, "DRALBML0", Normalize("DRALBML0\n"))

	b, err := ParseScanned("ＤＲＡＬＢＭＬ０")
	require.NoError(t, err)
	assert.Equal(t, "DRALBML0", b.String())

	// 正規化しない入口は全角を受け付けない
	_, err = Parse("ＤＲＡＬＢＭＬ０")
	assert.ErrorIs(t, err, ErrMalformedBarcode)
}

func TestEncodeDecodeField(t *testing.T) {
	v, err := DecodeField("year", "A")
	require.NoError(t, err)
	assert.Equal(t, int64(2008), v)

	v, err = DecodeField("year", "Z")
	require.NoError(t, err)
	assert.Equal(t, int64(2033), v)

	_, err = EncodeField("year", 2034)
	assert.ErrorIs(t, err, ErrDomainOutOfRange)

	_, err = DecodeField("lot", "A")
	assert.ErrorIs(t, err, ErrMalformedCode)

	code, err := EncodeField("series", 1000)
	require.NoError(t, err)
	assert.Equal(t, "BML", code)

	_, err = EncodeField("colour", 1)
	assert.ErrorIs(t, err, ErrUnknownField)
}
