package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// actionKind tags a parsed callback payload.
type actionKind int

const (
	actionUnknown actionKind = iota
	actionAddProduct
	actionCheckout
	actionClearCart
	actionPayOnline
	actionPayCash
	actionReview
)

// callbackAction is a parsed button payload. ID carries the product id for
// actionAddProduct and the order id for payment and review actions.
type callbackAction struct {
	Kind actionKind
	ID   uint
}

// parseCallback maps a raw callback payload onto a tagged action. Parsing is
// kept separate from handler dispatch so unknown or malformed payloads are
// rejected in one place.
func parseCallback(data string) (callbackAction, error) {
	switch data {
	case "checkout":
		return callbackAction{Kind: actionCheckout}, nil
	case "clear_cart":
		return callbackAction{Kind: actionClearCart}, nil
	}

	prefixes := []struct {
		prefix string
		kind   actionKind
	}{
		{"add_", actionAddProduct},
		{"pay_online_", actionPayOnline},
		{"pay_cash_", actionPayCash},
		{"review_", actionReview},
	}
	for _, p := range prefixes {
		raw, ok := strings.CutPrefix(data, p.prefix)
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return callbackAction{}, fmt.Errorf("malformed callback payload %q: %w", data, err)
		}
		return callbackAction{Kind: p.kind, ID: uint(id)}, nil
	}
	return callbackAction{}, fmt.Errorf("unknown callback payload %q", data)
}
