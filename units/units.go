// C:\Users\wasab\OneDrive\デスクトップ\BARCODE\units\units.go

package units

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"barcodebuilder/alpha"
)

// TableSize は容量テーブルの行数 (A-Z) です。
const TableSize = 26

// defaultCapacityLabels は A=1GB から倍々で並ぶ容量ラベルです。
// J(512GB) までは既存フォームの一覧、K 以降は同じ倍率で SI 単位に延長したものです。
var defaultCapacityLabels = [TableSize]string{
	"1GB", "2GB", "4GB", "8GB", "16GB", "32GB", "64GB", "128GB", "256GB", "512GB",
	"1TB", "2TB", "4TB", "8TB", "16TB", "32TB", "64TB", "128TB", "256TB", "512TB",
	"1PB", "2PB", "4PB", "8PB", "16PB", "32PB",
}

var siUnits = []struct {
	size   uint64
	suffix string
}{
	{humanize.EByte, "EB"},
	{humanize.PByte, "PB"},
	{humanize.TByte, "TB"},
	{humanize.GByte, "GB"},
	{humanize.MByte, "MB"},
	{humanize.KByte, "KB"},
}

// DefaultCapacityLabels は既定の容量ラベル (A-Z順) のコピーを返します。
func DefaultCapacityLabels() []string {
	labels := make([]string, TableSize)
	copy(labels, defaultCapacityLabels[:])
	return labels
}

// DefaultCapacities は既定の容量テーブルをバイト数で返します。
func DefaultCapacities() []uint64 {
	table, err := ParseCapacities(defaultCapacityLabels[:])
	if err != nil {
		panic(fmt.Sprintf("units: default capacity table: %v", err))
	}
	return table
}

// ParseCapacity は "512GB" のような容量ラベルをバイト数に変換します (SI単位)。
func ParseCapacity(label string) (uint64, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, fmt.Errorf("容量ラベルが空です")
	}
	n, err := humanize.ParseBytes(label)
	if err != nil {
		return 0, fmt.Errorf("容量ラベルを解釈できません %q: %w", label, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("容量が0です: %q", label)
	}
	return n, nil
}

// ParseCapacities はラベルの並びをそのままの順でバイト数に変換します。
func ParseCapacities(labels []string) ([]uint64, error) {
	table := make([]uint64, len(labels))
	for i, label := range labels {
		n, err := ParseCapacity(label)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		table[i] = n
	}
	return table, nil
}

// FormatCapacity はバイト数を割り切れる最大のSI単位で "8GB" のように表記します。
func FormatCapacity(bytes uint64) string {
	for _, u := range siUnits {
		if bytes >= u.size && bytes%u.size == 0 {
			return fmt.Sprintf("%d%s", bytes/u.size, u.suffix)
		}
	}
	return humanize.Bytes(bytes)
}

// LoadCapacityFile は容量テーブルCSV (コード,容量ラベル) を読み込みます。
// encoding には "shift_jis" や "utf-8" など WHATWG のラベルを指定します (空なら utf-8)。
// 先頭行がコードでなければ見出し行として読み飛ばします。
func LoadCapacityFile(path, encoding string) ([]uint64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCapacityFile: open %s: %w", path, err)
	}
	defer file.Close()

	table, err := ReadCapacityTable(file, encoding)
	if err != nil {
		return nil, fmt.Errorf("LoadCapacityFile: read %s: %w", path, err)
	}
	log.Printf("INFO: [Units] capacity table loaded from %s (%d rows)", path, len(table))
	return table, nil
}

// ReadCapacityTable は LoadCapacityFile の読み込み本体です。
func ReadCapacityTable(r io.Reader, encoding string) ([]uint64, error) {
	if encoding == "" {
		encoding = "utf-8"
	}
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", encoding, err)
	}

	// BOM付きUTF-8もそのまま読めるようにする
	decoder := unicode.BOMOverride(enc.NewDecoder())
	reader := csv.NewReader(transform.NewReader(r, decoder))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var table [TableSize]uint64
	seen := 0
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if len(record) < 2 {
			continue
		}

		code := strings.TrimSpace(record[0])
		if err := alpha.Validate(code, 1); err != nil {
			if line == 1 {
				continue // 見出し行
			}
			return nil, fmt.Errorf("line %d: 不正なコードです: %w", line, err)
		}

		idx := int(code[0] - 'A')
		if seen&(1<<idx) != 0 {
			return nil, fmt.Errorf("line %d: コード %s が重複しています", line, code)
		}
		n, err := ParseCapacity(record[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		table[idx] = n
		seen |= 1 << idx
	}

	var missing []string
	for i := 0; i < TableSize; i++ {
		if seen&(1<<i) == 0 {
			missing = append(missing, string(rune('A'+i)))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("コードが不足しています: %s", strings.Join(missing, ","))
	}
	return table[:], nil
}
