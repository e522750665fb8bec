package items

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTable(t *testing.T) {
	assert := assert.New(t)

	table := DefaultTable()

	entry := table[0x01]
	assert.Equal("Master Ball", entry.Name)
	assert.True(entry.Valid)
	assert.True(entry.Quantity)

	entry = table[0x00]
	assert.False(entry.Valid)

	entry = table[0x05]
	assert.Equal("Town Map", entry.Name)
	assert.True(entry.Valid)
	assert.False(entry.Quantity)

	entry = table[0x14]
	assert.Equal("Potion", entry.Name)

	for code, entry := range table {
		assert.Equal(code, entry.Code)
		assert.NotEqual("", entry.Name, "code %02x", code)
	}
}

// tableText builds a complete table, with extra appended verbatim.
func tableText(skip int, extra string) string {
	var sb strings.Builder
	for code := range 256 {
		if code == skip {
			continue
		}
		sb.WriteString(fmt.Sprintf("[[item]]\ncode = %d\nname = \"item %d\"\nvalid = true\nquantity = true\n\n", code, code))
	}
	sb.WriteString(extra)
	return sb.String()
}

func TestLoadTable(t *testing.T) {
	assert := assert.New(t)

	table, err := LoadTable(strings.NewReader(tableText(-1, "")))
	assert.NoError(err)
	assert.Equal("item 200", table[200].Name)

	_, err = LoadTable(strings.NewReader(tableText(7, "")))
	assert.ErrorIs(err, ErrTableIncomplete)

	_, err = LoadTable(strings.NewReader(tableText(-1, "[[item]]\ncode = 7\nname = \"again\"\n")))
	assert.Equal(ErrTableDuplicate(7), err)

	_, err = LoadTable(strings.NewReader(tableText(-1, "[[item]]\ncode = 256\nname = \"big\"\n")))
	assert.Equal(ErrTableCode(256), err)

	_, err = LoadTable(strings.NewReader(tableText(-1, "[[item]]\ncode = 300\ncolour = \"red\"\n")))
	assert.Equal(ErrTableKey("item.colour"), err)

	_, err = LoadTable(strings.NewReader("[[item]\n"))
	assert.Error(err)
}
