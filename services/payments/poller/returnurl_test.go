package poller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReturnURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ReturnParams
	}{
		{
			name: "result url",
			raw:  "https://shop.example/checkout/confirm-order?payment=liqpay&order_id=txn_1&email=a%40b.com",
			want: ReturnParams{OrderID: "txn_1", Email: "a@b.com"},
		},
		{
			name: "camel case alias",
			raw:  "https://shop.example/checkout/confirm-order?orderID=txn_2",
			want: ReturnParams{OrderID: "txn_2"},
		},
		{
			name: "gateway alias",
			raw:  "/checkout/confirm-order?liqpay_order_id=txn_3",
			want: ReturnParams{OrderID: "txn_3"},
		},
		{
			name: "order_id wins over aliases",
			raw:  "https://shop.example/?liqpay_order_id=txn_b&order_id=txn_a",
			want: ReturnParams{OrderID: "txn_a"},
		},
		{
			name: "bare query",
			raw:  "order_id=txn_4&email=c%40d.com",
			want: ReturnParams{OrderID: "txn_4", Email: "c@d.com"},
		},
		{
			name: "leading question mark",
			raw:  "?order_id=txn_5",
			want: ReturnParams{OrderID: "txn_5"},
		},
		{
			name: "no reference",
			raw:  "https://shop.example/checkout/confirm-order?payment=liqpay",
			want: ReturnParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReturnURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseReturnURL_Invalid(t *testing.T) {
	_, err := ParseReturnURL("http://%zz/")
	assert.Error(t, err)

	_, err = ParseReturnURL("order_id=%zz")
	assert.Error(t, err)
}
