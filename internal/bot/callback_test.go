package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCallback(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    callbackAction
		wantErr bool
	}{
		{"add product", "add_17", callbackAction{Kind: actionAddProduct, ID: 17}, false},
		{"checkout", "checkout", callbackAction{Kind: actionCheckout}, false},
		{"clear cart", "clear_cart", callbackAction{Kind: actionClearCart}, false},
		{"pay online", "pay_online_3", callbackAction{Kind: actionPayOnline, ID: 3}, false},
		{"pay cash", "pay_cash_3", callbackAction{Kind: actionPayCash, ID: 3}, false},
		{"review", "review_8", callbackAction{Kind: actionReview, ID: 8}, false},
		{"unknown payload", "drop_tables", callbackAction{}, true},
		{"non numeric id", "add_abc", callbackAction{}, true},
		{"negative id", "add_-1", callbackAction{}, true},
		{"missing id", "add_", callbackAction{}, true},
		{"empty payload", "", callbackAction{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseCallback(tt.data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReviewRequest(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		wantID uint
		wantOK bool
	}{
		{"simple", "Отзыв 5", 5, true},
		{"extra spaces", "Отзыв  7 ", 7, true},
		{"non numeric", "Отзыв abc", 0, false},
		{"bare word", "Отзыв", 0, false},
		{"unrelated text", "привет", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := parseReviewRequest(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
