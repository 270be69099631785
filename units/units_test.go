package units

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"barcodebuilder/alpha"
)

func TestParseCapacity(t *testing.T) {
	n, err := ParseCapacity("1GB")
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000000), n)

	n, err = ParseCapacity(" 512GB ")
	require.NoError(t, err)
	assert.Equal(t, uint64(512000000000), n)

	_, err = ParseCapacity("")
	assert.Error(t, err)
	_, err = ParseCapacity("lots")
	assert.Error(t, err)
	_, err = ParseCapacity("0GB")
	assert.Error(t, err)
}

func TestFormatCapacity(t *testing.T) {
	assert.Equal(t, "1GB", FormatCapacity(1000000000))
	assert.Equal(t, "512GB", FormatCapacity(512000000000))
	assert.Equal(t, "1TB", FormatCapacity(1000000000000))
	assert.Equal(t, "32PB", FormatCapacity(32000000000000000))
	assert.Equal(t, "1500MB", FormatCapacity(1500000000))
}

func TestDefaultCapacities(t *testing.T) {
	table := DefaultCapacities()
	require.Len(t, table, TableSize)
	for i := 1; i < len(table); i++ {
		assert.Less(t, table[i-1], table[i], "row %d", i)
	}

	labels := DefaultCapacityLabels()
	for i, label := range labels {
		assert.Equal(t, label, FormatCapacity(table[i]))
	}

	// 返されるスライスは呼び出し側で書き換えても既定値に影響しない
	labels[0] = "999GB"
	assert.Equal(t, "1GB", DefaultCapacityLabels()[0])
}

func capacityCSV(header string) string {
	var sb strings.Builder
	if header != "" {
		sb.WriteString(header + "\n")
	}
	for i, label := range DefaultCapacityLabels() {
		sb.WriteString(string(rune('A'+i)) + "," + label + "\n")
	}
	return sb.String()
}

func TestReadCapacityTableUTF8WithBOM(t *testing.T) {
	data := "\xEF\xBB\xBF" + capacityCSV("code,capacity")
	table, err := ReadCapacityTable(strings.NewReader(data), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacities(), table)
}

func TestLoadCapacityFileShiftJIS(t *testing.T) {
	encoded, err := japanese.ShiftJIS.NewEncoder().String(capacityCSV("コード,容量"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "capacity.csv")
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0644))

	table, err := LoadCapacityFile(path, "shift_jis")
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacities(), table)
}

func TestReadCapacityTableErrors(t *testing.T) {
	_, err := ReadCapacityTable(strings.NewReader("A,1GB\nB,2GB\n"), "utf-8")
	assert.ErrorContains(t, err, "C")

	dup := capacityCSV("") + "A,1GB\n"
	_, err = ReadCapacityTable(strings.NewReader(dup), "utf-8")
	assert.ErrorContains(t, err, "重複")

	bad := strings.Replace(capacityCSV(""), "B,2GB", "B,two", 1)
	_, err = ReadCapacityTable(strings.NewReader(bad), "utf-8")
	assert.Error(t, err)

	badCode := capacityCSV("") + "AA,1GB\n"
	_, err = ReadCapacityTable(strings.NewReader(badCode), "utf-8")
	assert.ErrorContains(t, err, "不正なコード")
	assert.ErrorIs(t, err, alpha.ErrMalformedCode)

	// 小文字や全角のコードも英字表と同じ規則で拒否する
	for _, code := range []string{"a", "Ａ"} {
		_, err = ReadCapacityTable(strings.NewReader(capacityCSV("")+code+",1GB\n"), "utf-8")
		assert.ErrorIs(t, err, alpha.ErrMalformedCode, "code %q", code)
	}

	_, err = ReadCapacityTable(strings.NewReader(capacityCSV("")), "no-such-encoding")
	assert.Error(t, err)
}

func TestLoadCapacityFileMissing(t *testing.T) {
	_, err := LoadCapacityFile(filepath.Join(t.TempDir(), "none.csv"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
