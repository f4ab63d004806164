package goodtilldomain

// The sales endpoint is only loosely typed: numeric fields arrive as strings
// or numbers depending on till configuration, optional blocks are omitted
// entirely, and the payload itself is either a bare list or an object wrapping
// the list under "data". Sales are therefore kept as generic JSON maps with
// typed accessors, and every lookup tolerates an absent key.

// Sale is one raw transaction as returned by the sales API.
type Sale map[string]any

// Field returns a top-level scalar, untyped. Absent keys yield nil.
func (s Sale) Field(key string) any {
	return s[key]
}

// Object returns a nested object field, or an empty map when absent or of an
// unexpected shape.
func (s Sale) Object(key string) map[string]any {
	if m, ok := s[key].(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

// Details returns the sales_details block.
func (s Sale) Details() map[string]any {
	return s.Object("sales_details")
}

// Items returns the line items nested under sales_details. Entries that are
// not objects are skipped.
func (s Sale) Items() []LineItem {
	raw, ok := s.Details()["sales_items"].([]any)
	if !ok {
		return nil
	}

	items := make([]LineItem, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, LineItem(m))
		}
	}

	return items
}

// Payments returns the sales_payments block: payment-method name to raw
// payment object.
func (s Sale) Payments() map[string]any {
	return s.Object("sales_payments")
}

// LineItem is one product entry within a Sale.
type LineItem map[string]any

// Field returns a scalar of the line item, untyped. Absent keys yield nil.
func (i LineItem) Field(key string) any {
	return i[key]
}

// SalesFromPayload normalizes the two payload shapes the API produces: a bare
// list of sales, or an object exposing the list under "data". The second
// return value is false for anything else.
func SalesFromPayload(payload any) ([]Sale, bool) {
	switch p := payload.(type) {
	case []Sale:
		return p, true
	case []any:
		return salesFromList(p)
	case map[string]any:
		data, ok := p["data"]
		if !ok {
			return nil, false
		}
		list, ok := data.([]any)
		if !ok {
			return nil, false
		}
		return salesFromList(list)
	default:
		return nil, false
	}
}

func salesFromList(list []any) ([]Sale, bool) {
	sales := make([]Sale, 0, len(list))
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, false
		}
		sales = append(sales, Sale(m))
	}
	return sales, true
}
