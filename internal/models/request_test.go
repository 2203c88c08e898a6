package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordListValue(t *testing.T) {
	value, err := KeywordList{"law", "good boy", "city"}.Value()
	require.NoError(t, err)
	assert.Equal(t, "law,good boy,city", value)

	empty, err := KeywordList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestKeywordListScan(t *testing.T) {
	var k KeywordList
	require.NoError(t, k.Scan("law,good boy,city"))
	assert.Equal(t, KeywordList{"law", "good boy", "city"}, k)

	require.NoError(t, k.Scan(""))
	assert.Nil(t, k)

	require.NoError(t, k.Scan([]byte("one,two")))
	assert.Equal(t, KeywordList{"one", "two"}, k)

	require.NoError(t, k.Scan(nil))
	assert.Nil(t, k)

	assert.Error(t, k.Scan(42))
}
