package catalog

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"medical-barcode-api/model"
)

func TestKeys(t *testing.T) {
	b, err := json.Marshal(Get())
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &m))

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"code128", "laetus", "swiss_medical", "ean13", "usage_notes"}, keys)
}

func TestResultDataMatchesPayload(t *testing.T) {
	c := Get()

	for _, ex := range c.Laetus.Examples {
		q := query(t, ex.Url)
		r, err := model.NewLaetusRequest(q.Get("patient_id"), q.Get("sample_id"), q.Get("lab_code"))
		require.NoError(t, err, ex.Url)
		assert.Equal(t, ex.ResultData, r.Payload())
	}

	for _, ex := range c.SwissMedical.Examples {
		q := query(t, ex.Url)
		r, err := model.NewSwissMedicalRequest(q.Get("gtin"), q.Get("lot"), q.Get("expiry"), q.Get("serial"))
		require.NoError(t, err, ex.Url)
		assert.Equal(t, ex.ResultData, r.Payload())
	}
}

func TestExampleUrlsAreValid(t *testing.T) {
	c := Get()

	for _, ex := range c.EAN13.Examples {
		_, err := model.NewEAN13Request(query(t, ex.Url).Get("code"))
		assert.NoError(t, err, ex.Url)
	}
	for _, ex := range c.Code128.Examples {
		assert.Equal(t, c.Code128.Endpoint, path(t, ex.Url))
	}
}

func TestGetReturnsCopy(t *testing.T) {
	a := Get()
	a.Code128.Examples[0].Url = "changed"
	assert.NotEqual(t, "changed", Get().Code128.Examples[0].Url)
}

func query(t *testing.T, raw string) url.Values {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Query()
}

func path(t *testing.T, raw string) string {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u.Path
}
