package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/pdf2xlsx-go/pkg/pdf2xlsx/models"
)

func sampleTable() *models.Table {
	return &models.Table{
		Headers: []string{"Code", "Name", "Unit"},
		Rows: []models.RawRow{
			{"001", "Foundation", "m2"},
			{"002", "Wall", "m3"},
		},
	}
}

func TestProjectKeepsIndexOrder(t *testing.T) {
	out, err := Project(sampleTable(), []int{2, 0})
	require.NoError(t, err)

	assert.Equal(t, []string{"Code", "Unit"}, out.Headers)
	assert.Equal(t, []models.RawRow{{"001", "m2"}, {"002", "m3"}}, out.Rows)
}

func TestProjectCollapsesDuplicates(t *testing.T) {
	out, err := Project(sampleTable(), []int{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Name"}, out.Headers)
	assert.Len(t, out.Rows, 2)
}

func TestProjectEmptySelection(t *testing.T) {
	out, err := Project(sampleTable(), nil)
	require.NoError(t, err)
	assert.Empty(t, out.Headers)
	assert.Len(t, out.Rows, 2)
	assert.Empty(t, out.Rows[0])
}

func TestProjectOutOfRange(t *testing.T) {
	_, err := Project(sampleTable(), []int{0, 3})
	assert.ErrorIs(t, err, ErrColumnOutOfRange)

	_, err = Project(sampleTable(), []int{-1})
	assert.ErrorIs(t, err, ErrColumnOutOfRange)
}

func TestProjectDoesNotMutateSource(t *testing.T) {
	table := sampleTable()
	out, err := Project(table, []int{0})
	require.NoError(t, err)
	out.Rows[0][0] = "changed"
	assert.Equal(t, "001", table.Rows[0][0])
}
