package client

import (
	"testing"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountList_Value_NilBecomesEmptyArray(t *testing.T) {
	var l AccountList

	v, err := l.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), v)
}

func TestAccountList_Value_PreservesOrder(t *testing.T) {
	l := AccountList{
		{Name: "Checking", Balance: 400},
		{Name: "Savings", Balance: 800},
	}

	v, err := l.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"Checking","balance":400},{"name":"Savings","balance":800}]`, string(v.([]byte)))
}

func TestAccountList_Scan(t *testing.T) {
	var l AccountList
	err := l.Scan([]byte(`[{"name":"Checking","balance":400}]`))
	require.NoError(t, err)
	require.Len(t, l, 1)
	assert.Equal(t, domain.Account{Name: "Checking", Balance: 400}, l[0])

	var fromString AccountList
	err = fromString.Scan(`[{"name":"Savings","balance":800}]`)
	require.NoError(t, err)
	require.Len(t, fromString, 1)

	var fromNil AccountList
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)

	var bad AccountList
	assert.Error(t, bad.Scan(42))
}
