package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type CSVSimpleTest struct {
	Name   string  `csv:"name"`
	Age    int     `csv:"age"`
	Height float32 `csv:"height"`
	Gender bool    `csv:"gender"`
	Other  string
}

func TestCSVSimple(t *testing.T) {
	rows, err := ReadCSVFromFile[CSVSimpleTest]("./testdata/simple.csv", ';')
	require.NoError(t, err)
	require.Equal(t, 3, rows.Length())

	assert.Equal(t, CSVSimpleTest{Name: "John", Age: 30, Height: 170, Gender: false}, rows[0])
	assert.Equal(t, CSVSimpleTest{Name: "Jane", Age: 25, Height: 160, Gender: true}, rows[1])
	assert.Equal(t, CSVSimpleTest{Name: "Joe", Age: 35, Height: 175, Gender: true}, rows[2])
}

func TestCSVError(t *testing.T) {
	rows, err := ReadCSVFromFile[CSVSimpleTest]("./testdata/error.csv", ';')
	require.NoError(t, err)
	// the row with an extra column is dropped
	require.Equal(t, 3, rows.Length())

	assert.Equal(t, "John", rows[0].Name)
	assert.InDelta(t, 170.5, rows[0].Height, 1e-4)
	assert.Equal(t, "Joe", rows[1].Name)
	assert.Equal(t, float32(0), rows[1].Height)
	assert.Equal(t, "", rows[2].Name)
	assert.Equal(t, 28, rows[2].Age)
}

func TestCSVMissingFile(t *testing.T) {
	_, err := ReadCSVFromFile[CSVSimpleTest]("./testdata/missing.csv", ';')
	assert.Error(t, err)
}

func TestArrayFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "values")
	values := Array[float64]{0, 1.5, 100, 3}

	require.NoError(t, WriteArrayToFile(values, file))
	loaded, err := ReadArrayFromFile[float64](file)
	require.NoError(t, err)
	assert.Equal(t, values, loaded)
}

func TestReadArrayTruncated(t *testing.T) {
	writer := NewBufferWriter()
	require.NoError(t, Write(writer, int32(4)))
	require.NoError(t, Write(writer, float64(1)))

	_, err := ReadArray[float64](NewBufferReader(writer.Bytes()))
	assert.Error(t, err)
}
