package fields

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"barcodebuilder/units"
)

// DefaultBaseYear は年コード A に対応する西暦です。
const DefaultBaseYear = 2008

// CapacityNote は容量コード表が外部の正式な規格と照合されていないことの注意書きです。
const CapacityNote = "Please confirm these codes or provide a correct list."

// Scheme は4フィールドの組です。生成後は変更されないため並行に参照して構いません。
type Scheme struct {
	baseYear   int
	capacities []int64
	fields     map[Name]*Field
}

var defaultScheme = mustScheme(DefaultBaseYear, units.DefaultCapacities())

// Default は既定の容量テーブルと基準年 (2008) のスキームを返します。
func Default() *Scheme {
	return defaultScheme
}

func mustScheme(baseYear int, capacities []uint64) *Scheme {
	s, err := NewScheme(baseYear, capacities)
	if err != nil {
		panic(err)
	}
	return s
}

// NewScheme は基準年と容量テーブル (A-Z の26件、昇順) からスキームを作ります。
func NewScheme(baseYear int, capacities []uint64) (*Scheme, error) {
	if baseYear <= 0 {
		return nil, fmt.Errorf("基準年が不正です: %d", baseYear)
	}
	if len(capacities) != units.TableSize {
		return nil, fmt.Errorf("容量テーブルは%d件必要です: %d件", units.TableSize, len(capacities))
	}
	table := make([]int64, len(capacities))
	for i, c := range capacities {
		if c == 0 || c > math.MaxInt64 {
			return nil, fmt.Errorf("容量が範囲外です (row %d): %d", i+1, c)
		}
		if i > 0 && c <= capacities[i-1] {
			return nil, fmt.Errorf("容量テーブルが昇順ではありません (row %d)", i+1)
		}
		table[i] = int64(c)
	}

	s := &Scheme{baseYear: baseYear, capacities: table}
	s.fields = map[Name]*Field{
		Capacity: s.capacityField(),
		Year:     s.yearField(),
		Lot: newSequenceField(Lot, Info{
			Title:       "Lot Number",
			Description: "Two-letter lot identification (AA=1 to ZZ=676)",
			Position:    3,
		}, "Lot #%d"),
		Series: newSequenceField(Series, Info{
			Title:       "Product Series",
			Description: "Three-letter series code (AAA=1 to ZZZ=17,576)",
			Position:    5,
		}, "Series #%d"),
	}
	return s, nil
}

func (s *Scheme) capacityField() *Field {
	return newField(Capacity, Info{
		Title:       "Memory Capacity",
		Description: "Single letter code representing storage capacity",
		Note:        CapacityNote,
		Position:    1,
	},
		func(n int) (int64, bool) {
			if n < 1 || n > len(s.capacities) {
				return 0, false
			}
			return s.capacities[n-1], true
		},
		func(v int64) (int, bool) {
			i := sort.Search(len(s.capacities), func(i int) bool { return s.capacities[i] >= v })
			if i == len(s.capacities) || s.capacities[i] != v {
				return 0, false
			}
			return i + 1, true
		},
		func(v int64) string {
			if v <= 0 {
				return strconv.FormatInt(v, 10)
			}
			return units.FormatCapacity(uint64(v))
		},
	)
}

func (s *Scheme) yearField() *Field {
	var f *Field
	f = newField(Year, Info{
		Title:       "Calendar Year",
		Description: fmt.Sprintf("Year of manufacture (A=%d to Z=%d)", s.baseYear, s.LastYear()),
		Position:    2,
	},
		func(n int) (int64, bool) {
			if n < 1 || n > f.span {
				return 0, false
			}
			return int64(s.baseYear + n - 1), true
		},
		func(v int64) (int, bool) {
			n := v - int64(s.baseYear) + 1
			if n < 1 || n > int64(f.span) {
				return 0, false
			}
			return int(n), true
		},
		func(v int64) string {
			return strconv.FormatInt(v, 10)
		},
	)
	return f
}

// BaseYear は年コード A の西暦です。
func (s *Scheme) BaseYear() int { return s.baseYear }

// LastYear は年コード Z の西暦です。
func (s *Scheme) LastYear() int { return s.baseYear + 25 }

// YearsRemaining は current 年の後に残っている年コードの数です (使い切っていれば0)。
func (s *Scheme) YearsRemaining(current int) int {
	if rest := s.LastYear() - current; rest > 0 {
		return rest
	}
	return 0
}

// Capacities は容量テーブル (A-Z順、バイト数) のコピーを返します。
func (s *Scheme) Capacities() []int64 {
	out := make([]int64, len(s.capacities))
	copy(out, s.capacities)
	return out
}

// Field は名前からフィールドを返します。
func (s *Scheme) Field(name Name) (*Field, error) {
	f, ok := s.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// Fields はバーコード上の並び順でフィールドを返します。
func (s *Scheme) Fields() []*Field {
	out := make([]*Field, 0, len(Names))
	for _, name := range Names {
		out = append(out, s.fields[name])
	}
	return out
}

// Encode は名前で指定したフィールドのドメイン値をコードに変換します。
func (s *Scheme) Encode(name Name, v int64) (string, error) {
	f, err := s.Field(name)
	if err != nil {
		return "", err
	}
	return f.Encode(v)
}

// Decode は名前で指定したフィールドのコードをドメイン値に変換します。
func (s *Scheme) Decode(name Name, code string) (int64, error) {
	f, err := s.Field(name)
	if err != nil {
		return 0, err
	}
	return f.Decode(code)
}
