package resolvers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fastjson"
)

func TestLookup(t *testing.T) {
	v := fastjson.MustParse(`{"a":{"b":{"c":"value","n":7123456789012345678,"empty":"","obj":{}}},"arr":[1]}`)

	require.Equal(t, "value", *LookupString(v, "a", "b", "c"))
	require.Equal(t, "7123456789012345678", *LookupString(v, "a", "b", "n"))
	require.Nil(t, LookupString(v, "a", "b", "empty"))
	require.Nil(t, LookupString(v, "a", "missing", "c"))
	require.Nil(t, LookupString(v, "a", "b", "obj"))
	require.Nil(t, LookupString(nil, "a"))

	require.NotNil(t, LookupObject(v, "a", "b", "obj"))
	require.Nil(t, LookupObject(v, "arr"))
	require.Nil(t, LookupObject(v, "a", "b", "c"))

	require.Equal(t, "value", *FirstString(v, []string{"x"}, []string{"a", "b", "c"}))
	require.Nil(t, FirstString(v, []string{"x"}, []string{"y"}))
}
