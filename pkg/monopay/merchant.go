package monopay

import "context"

// Merchant is the merchant account behind the token.
type Merchant struct {
	Record
}

// NewMerchant returns an empty merchant bound to c.
func NewMerchant(c *Client) *Merchant {
	m := &Merchant{}
	m.BindClient(c)
	return m
}

func (m *Merchant) MerchantID() string   { return m.StringValue("merchantId") }
func (m *Merchant) MerchantName() string { return m.StringValue("merchantName") }
func (m *Merchant) Edrpou() string       { return m.StringValue("edrpou") }

// Load fetches merchant details and replaces the record's data with them.
func (m *Merchant) Load(ctx context.Context) (*Merchant, error) {
	c, err := m.gateway()
	if err != nil {
		return m, err
	}
	resp, err := c.Merchant(ctx)
	if err != nil {
		return m, err
	}
	_, hasID := present(resp, "merchantId")
	_, hasName := present(resp, "merchantName")
	if !hasID || !hasName {
		return m, contractError(CodeMerchantUnavailable, "Merchant isn't available in Mono.")
	}

	m.ReplaceAll(resp)
	return m, nil
}

// Statement returns statement entries between from and to (unix seconds), optionally for one
// terminal code. Entries are returned as the gateway sent them.
func (m *Merchant) Statement(ctx context.Context, from, to int64, code string) ([]any, error) {
	c, err := m.gateway()
	if err != nil {
		return nil, err
	}
	resp, err := c.MerchantStatement(ctx, StatementFilter{From: from, To: to, Code: code})
	if err != nil {
		return nil, err
	}
	raw, ok := present(resp, "list")
	if !ok {
		return nil, contractError(CodeStatementUnavailable, "Merchant statement isn't available on Mono.")
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, contractError(CodeStatementUnavailable, "Merchant statement isn't available on Mono.")
	}
	return list, nil
}

// PublicKey returns the base64 key used to verify gateway signatures.
func (m *Merchant) PublicKey(ctx context.Context) (string, error) {
	c, err := m.gateway()
	if err != nil {
		return "", err
	}
	resp, err := c.PublicKey(ctx)
	if err != nil {
		return "", err
	}
	key, ok := present(resp, "key")
	if !ok {
		return "", contractError(CodePublicKeyUnavailable, "Public key isn't available in Mono.")
	}
	return stringify(key), nil
}
