package monopay

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchant_Load(t *testing.T) {
	g := newFakeGateway(t).reply(MerchantDetailsPath, http.StatusOK, `{"merchantId":"12o4Vv7EWy","merchantName":"Shop","edrpou":"4242424242"}`)

	m, err := NewMerchant(g.client()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12o4Vv7EWy", m.MerchantID())
	assert.Equal(t, "Shop", m.MerchantName())
	assert.Equal(t, "4242424242", m.Edrpou())
}

func TestMerchant_LoadContractViolation(t *testing.T) {
	g := newFakeGateway(t).reply(MerchantDetailsPath, http.StatusOK, `{"merchantId":"12o4Vv7EWy"}`)

	m := NewMerchant(g.client())
	m.Set("merchantName", "previous")
	_, err := m.Load(context.Background())

	e := requireKind(t, err, KindContractViolation)
	assert.Equal(t, CodeMerchantUnavailable, e.Code)
	assert.Equal(t, "Merchant isn't available in Mono.", e.Message)
	assert.Equal(t, "previous", m.MerchantName())
}

func TestMerchant_Statement(t *testing.T) {
	g := newFakeGateway(t).reply(MerchantStatementPath, http.StatusOK,
		`{"list":[{"invoiceId":"2205175v4MfatvmUL2oR","status":"success","amount":4200,"ccy":980}]}`)

	list, err := NewMerchant(g.client()).Statement(context.Background(), 1000, 2000, "UAH")
	require.NoError(t, err)
	require.Len(t, list, 1)
	entry, ok := list[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2205175v4MfatvmUL2oR", entry["invoiceId"])

	q := g.requests()[0].Query
	assert.Equal(t, "1000", q.Get("from"))
	assert.Equal(t, "2000", q.Get("to"))
	assert.Equal(t, "UAH", q.Get("code"))
}

func TestMerchant_StatementOmitsEmptyFilters(t *testing.T) {
	g := newFakeGateway(t).reply(MerchantStatementPath, http.StatusOK, `{"list":[]}`)

	list, err := NewMerchant(g.client()).Statement(context.Background(), 1000, 0, "")
	require.NoError(t, err)
	assert.Empty(t, list)

	q := g.requests()[0].Query
	assert.Len(t, q, 1)
	assert.Equal(t, "1000", q.Get("from"))
}

func TestMerchant_StatementMissingList(t *testing.T) {
	g := newFakeGateway(t).reply(MerchantStatementPath, http.StatusOK, `{"items":[]}`)

	_, err := NewMerchant(g.client()).Statement(context.Background(), 1, 0, "")
	e := requireKind(t, err, KindContractViolation)
	assert.Equal(t, CodeStatementUnavailable, e.Code)
}

func TestMerchant_PublicKey(t *testing.T) {
	g := newFakeGateway(t).
		reply(MerchantPubKeyPath, http.StatusOK, `{"key":"LS0tLS1CRUdJTi..."}`).
		reply(MerchantPubKeyPath, http.StatusOK, `{"other":"x"}`)
	m := NewMerchant(g.client())

	key, err := m.PublicKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "LS0tLS1CRUdJTi...", key)

	_, err = m.PublicKey(context.Background())
	e := requireKind(t, err, KindContractViolation)
	assert.Equal(t, CodePublicKeyUnavailable, e.Code)
}
