package paystack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPayloadFillsMissingWithNil(t *testing.T) {
	p := defaultPayload(MapSource{"name": "X", "amount": 500}, PlanFields)

	assert.Len(t, p, len(PlanFields))
	assert.Equal(t, "X", p["name"])
	assert.Equal(t, 500, p["amount"])
	assert.Contains(t, p, "interval")
	assert.Nil(t, p["interval"])
}

func TestDefaultPayloadNilSource(t *testing.T) {
	p := defaultPayload(nil, PageFields)

	assert.Equal(t, Payload{"name": nil, "description": nil, "amount": nil}, p)
}

func TestFilterEmpty(t *testing.T) {
	p := filterEmpty(Payload{
		"nil":       nil,
		"empty":     "",
		"zero":      0,
		"zeroStr":   "0",
		"false":     false,
		"emptyMap":  map[string]any{},
		"emptyList": []string{},
		"kept":      "value",
		"number":    12.5,
		"flag":      true,
		"meta":      map[string]any{"k": "v"},
	})

	assert.Equal(t, Payload{
		"kept":   "value",
		"number": 12.5,
		"flag":   true,
		"meta":   map[string]any{"k": "v"},
	}, p)
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in   any
		want int64
		ok   bool
	}{
		{in: 10, want: 10, ok: true},
		{in: float64(12), want: 12, ok: true},
		{in: " 42 ", want: 42, ok: true},
		{in: "12.9", want: 12, ok: true},
		{in: "abc", ok: false},
		{in: nil, ok: false},
	}
	for _, tt := range tests {
		got, ok := toInt(tt.in)
		assert.Equal(t, tt.ok, ok, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}
}

func TestQueryKeepsOrderAndEscapes(t *testing.T) {
	assert.Equal(t, "b=2&a=x+y%26z", query("b", "2", "a", "x y&z"))
	assert.Equal(t, "plan", withQuery("plan", ""))
	assert.Equal(t, "page/a%2Fb", join("page", "a/b"))
}

func TestPayloadQuery(t *testing.T) {
	q := payloadQuery(Payload{"currency": "NGN", "to": "2024-02-01", "from": "2024-01-01", "settled": true}, ExportFields)

	assert.Equal(t, "from=2024-01-01&to=2024-02-01&settled=true&currency=NGN", q)
}

func TestGenTranxRef(t *testing.T) {
	a, b := GenTranxRef(), GenTranxRef()

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "-")
}

func TestChainSource(t *testing.T) {
	src := ChainSource{nil, MapSource{"email": "form@example.com"}, MapSource{"email": "shop@example.com", "plan": "PLN_1"}}

	v, ok := src.Lookup("email")
	assert.True(t, ok)
	assert.Equal(t, "form@example.com", v)

	v, ok = src.Lookup("plan")
	assert.True(t, ok)
	assert.Equal(t, "PLN_1", v)

	_, ok = src.Lookup("currency")
	assert.False(t, ok)
}
