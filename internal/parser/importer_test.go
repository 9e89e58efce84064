package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/cargoforge/internal/model"
)

func TestDetectCSVDelimiter(t *testing.T) {
	assert.Equal(t, ',', DetectCSVDelimiter([]byte("id,weight,dims\na,1,2x2x2\n")))
	assert.Equal(t, ';', DetectCSVDelimiter([]byte("id;weight;dims\na;1;2x2x2\n")))
	assert.Equal(t, '\t', DetectCSVDelimiter([]byte("id\tweight\tdims\na\t1\t2x2x2\n")))
	assert.Equal(t, '|', DetectCSVDelimiter([]byte("id|weight|dims\na|1|2x2x2\n")))
}

func TestImportCSV_CombinedDimsColumn(t *testing.T) {
	data := []byte("ID,Weight,Dims,Type\nCONT-001,24.5,6x2.4x2.6,standard\n")
	result, err := ImportCSV(data)
	require.NoError(t, err)
	require.Len(t, result.Cargo, 1)

	c := result.Cargo[0]
	assert.Equal(t, "CONT-001", c.ID)
	assert.InDelta(t, 24_500.0, c.WeightKg, 0.001)
	assert.Equal(t, [3]float64{6, 2.4, 2.6}, [3]float64{c.Length, c.Width, c.Height})
}

func TestImportCSV_SeparateDimensionColumns(t *testing.T) {
	data := []byte("id,weight_t,length_m,width_m,height_m,class\nB-1,12,8,3,2,hazardous\n")
	result, err := ImportCSV(data)
	require.NoError(t, err)
	require.Len(t, result.Cargo, 1)

	c := result.Cargo[0]
	assert.Equal(t, 8.0, c.Length)
	assert.Equal(t, 3.0, c.Width)
	assert.Equal(t, 2.0, c.Height)
	assert.Equal(t, model.TypeHazardous, c.Type)
}

func TestImportCSV_HeaderAliasesCaseInsensitive(t *testing.T) {
	data := []byte("CARGO ID,TONNES,SIZE\nX-1,5,2x2x2\n")
	result, err := ImportCSV(data)
	require.NoError(t, err)
	require.Len(t, result.Cargo, 1)
	assert.Equal(t, "X-1", result.Cargo[0].ID)
	// No type column: defaults to standard.
	assert.Equal(t, model.TypeStandard, result.Cargo[0].Type)
}

func TestImportCSV_EmptyIDSkippedWithWarning(t *testing.T) {
	data := []byte("id,weight,dims\n,5,2x2x2\nOK-1,5,2x2x2\n")
	result, err := ImportCSV(data)
	require.NoError(t, err)
	assert.Len(t, result.Cargo, 1)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "row 2")
}

func TestImportCSV_MissingRequiredColumns(t *testing.T) {
	_, err := ImportCSV([]byte("id,color\nA,red\n"))
	assert.Error(t, err)
}

func TestImportCSV_NoDataRows(t *testing.T) {
	_, err := ImportCSV([]byte("id,weight,dims\n"))
	assert.Error(t, err)
}
