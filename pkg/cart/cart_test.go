package cart

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dosa() Item  { return Item{ID: "d1", Name: "Masala Dosa", Price: 120, Category: "South Indian", IsVeg: true} }
func lassi() Item { return Item{ID: "l1", Name: "Sweet Lassi", Price: 60, Category: "Drinks", IsVeg: true} }

func TestAddIncrementsExistingItem(t *testing.T) {
	var c Cart
	c.Add(dosa())
	c.Add(lassi())
	c.Add(dosa())

	require.Len(t, c.Items, 2)
	assert.Equal(t, "d1", c.Items[0].ID, "insertion order is kept")
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, 1, c.Items[1].Quantity)
	assert.Equal(t, 3, c.TotalItems())
	assert.InDelta(t, 300, c.TotalPrice(), 0.001)
}

func TestAddIgnoresIncomingQuantity(t *testing.T) {
	var c Cart
	p := dosa()
	p.Quantity = 7
	c.Add(p)

	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  []Item
	}{
		{"increase", 2, []Item{withQty(dosa(), 3), withQty(lassi(), 1)}},
		{"decrease", -1, []Item{withQty(dosa(), 1), withQty(lassi(), 1)}},
		{"drops to zero", -2, []Item{withQty(lassi(), 1)}},
		{"floors below zero", -50, []Item{withQty(lassi(), 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			c.Add(dosa())
			c.Add(dosa())
			c.Add(lassi())

			c.UpdateQuantity("d1", tt.delta)

			if diff := cmp.Diff(tt.want, c.Items); diff != "" {
				t.Errorf("items mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateQuantityUnknownItem(t *testing.T) {
	var c Cart
	c.Add(dosa())
	c.UpdateQuantity("missing", 3)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestRemoveAndClear(t *testing.T) {
	var c Cart
	c.Add(dosa())
	c.Add(lassi())

	c.Remove("d1")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "l1", c.Items[0].ID)

	c.Remove("nope")
	assert.Len(t, c.Items, 1)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.TotalPrice())
}

func TestSummarizeEmptyCartHasNonNilItems(t *testing.T) {
	var c Cart
	s := c.Summarize("abc")

	assert.Equal(t, "abc", s.ID)
	assert.NotNil(t, s.Items)
	assert.Empty(t, s.Items)
	assert.Zero(t, s.TotalItems)
}

func TestOrderMessage(t *testing.T) {
	var c Cart
	c.Add(dosa())
	c.Add(dosa())
	half := lassi()
	half.Price = 99.5
	c.Add(half)

	want := "Hello Milan Restaurant, I would like to order:\n\n" +
		"• 2 x Masala Dosa (₹120)\n" +
		"• 1 x Sweet Lassi (₹99.5)\n" +
		"\nTotal Amount: ₹339.5" +
		"\n\nPlease confirm my order."

	assert.Equal(t, want, c.OrderMessage("Milan Restaurant"))
}

func TestWhatsAppURL(t *testing.T) {
	msg := "Hello Milan, 2 x Dosa & Chai"
	got := WhatsAppURL("917023232376", msg)

	require.True(t, strings.HasPrefix(got, "https://wa.me/917023232376?text="))
	assert.NotContains(t, got, "+", "spaces must be encoded as %20")
	assert.Contains(t, got, "%20")

	u, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, msg, u.Query().Get("text"))
}

func withQty(it Item, q int) Item {
	it.Quantity = q
	return it
}
