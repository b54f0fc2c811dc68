package paystack

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Payload is the JSON body of a gateway request.
type Payload map[string]any

// PayloadSource supplies default payload fields when an operation is called
// without an explicit payload. It usually wraps the inbound HTTP request of
// the calling application (see the ginadapter package).
type PayloadSource interface {
	Lookup(field string) (any, bool)
}

// MapSource is a PayloadSource backed by a plain map.
type MapSource map[string]any

func (m MapSource) Lookup(field string) (any, bool) {
	v, ok := m[field]
	return v, ok
}

// ChainSource looks a field up in each source in turn.
type ChainSource []PayloadSource

func (cs ChainSource) Lookup(field string) (any, bool) {
	for _, src := range cs {
		if src == nil {
			continue
		}
		if v, ok := src.Lookup(field); ok {
			return v, true
		}
	}
	return nil, false
}

// field maps a payload key onto the source field it is read from.
type field struct {
	key  string
	from string
}

func fields(keys ...string) []field {
	out := make([]field, len(keys))
	for i, k := range keys {
		out[i] = field{key: k, from: k}
	}
	return out
}

// Default field lists read from the PayloadSource when the caller passes a
// nil payload.
var (
	InitializeFields = fields("amount", "reference", "email", "channels", "plan", "first_name", "last_name",
		"callback_url", "currency", "metadata", "split_code", "subaccount", "transaction_charge", "bearer")
	PlanFields         = fields("name", "description", "amount", "interval", "send_invoices", "send_sms", "currency")
	CustomerFields     = fields("email", "first_name", "last_name", "phone", "metadata")
	ExportFields       = fields("from", "to", "settled")
	SubscriptionFields = []field{{"customer", "customer"}, {"plan", "plan"}, {"authorization", "authorization_code"}}
	SubscriptionToggle = fields("code", "token")
	PageFields         = fields("name", "description", "amount")
	SubAccountFields   = fields("business_name", "settlement_bank", "account_number", "percentage_charge",
		"primary_contact_email", "primary_contact_name", "primary_contact_phone", "metadata", "settlement_schedule")
	SubAccountUpdateFields = append(fields("description", "active"), SubAccountFields...)

	TransferRecipientRequired = []string{"type", "name", "account_number", "bank_code"}
	TransferRecipientOptional = []string{"description", "currency", "authorization_code", "metadata"}
	FinalizeTransferRequired  = []string{"transfer_code", "otp"}
	MakeTransferRequired      = []string{"source", "reason", "amount", "recipient"}
	MakeTransferOptional      = []string{"currency", "reference"}
)

// defaultPayload builds a payload holding every listed field. Fields the
// source does not provide are present with a nil value.
func defaultPayload(src PayloadSource, list []field) Payload {
	p := make(Payload, len(list))
	for _, f := range list {
		var v any
		if src != nil {
			if val, ok := src.Lookup(f.from); ok {
				v = val
			}
		}
		p[f.key] = v
	}
	return p
}

func lookupString(src PayloadSource, names ...string) string {
	if src == nil {
		return ""
	}
	for _, n := range names {
		if v, ok := src.Lookup(n); ok && !isEmpty(v) {
			return fmt.Sprint(v)
		}
	}
	return ""
}

// filterEmpty drops nil, zero and empty values, mirroring how form-post
// callers leave optional inputs blank.
func filterEmpty(p Payload) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		if !isEmpty(v) {
			out[k] = v
		}
	}
	return out
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == "" || t == "0"
	case bool:
		return !t
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// pick copies the listed keys from src when they hold a value.
func pick(dst, src Payload, keys []string) {
	for _, k := range keys {
		if v, ok := src[k]; ok && !isEmpty(v) {
			dst[k] = v
		}
	}
}

// toInt converts a numeric payload value. Form values arrive as strings.
func toInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case float64:
		return int64(t), true
	case float32:
		return int64(t), true
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return int64(f), true
		}
	}
	return 0, false
}

// query renders key/value pairs in the given order.
func query(kv ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv[i]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv[i+1]))
	}
	return b.String()
}

func withQuery(path, q string) string {
	if q == "" {
		return path
	}
	return path + "?" + q
}

func join(path string, segment string) string {
	return path + "/" + url.PathEscape(segment)
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// payloadQuery renders p as a query string: keys listed in first come first,
// in that order, the rest follow sorted.
func payloadQuery(p Payload, first []field) string {
	seen := make(map[string]bool, len(first))
	var kv []string
	for _, f := range first {
		seen[f.key] = true
		if v, ok := p[f.key]; ok {
			kv = append(kv, f.key, stringify(v))
		}
	}
	rest := make([]string, 0, len(p))
	for k := range p {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		kv = append(kv, k, stringify(p[k]))
	}
	return query(kv...)
}
