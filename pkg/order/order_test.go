package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/pkg/menu"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestEmptyOrder(t *testing.T) {
	o := New("Base Camp Coding Academy")

	assert.Equal(t, "Base Camp Coding Academy", o.Customer())
	assert.Zero(t, o.Len())
	assert.Empty(t, o.Items())
	assert.True(t, o.Total().IsZero())
	assert.NotEqual(t, uuid.Nil, o.ID())
}

func TestAddItemPreservesOrder(t *testing.T) {
	a := menu.NewPizza("Pepperoni", menu.NewTopping("pepperoni", d("0.75")))
	b := menu.NewSide("Bread sticks", d("1.5"))
	o := New("cust name")

	o.AddItem(a)
	o.AddItem(b)
	o.AddItem(a)

	items := o.Items()
	require.Len(t, items, 3)
	assert.Same(t, a, items[0])
	assert.Same(t, b, items[1])
	assert.Same(t, a, items[2])
	assert.Equal(t, "10.00", o.Total().StringFixed(2))
}

func TestItemsIsACopy(t *testing.T) {
	o := New("x", menu.NewSide("Breadsticks", d("2")))
	items := o.Items()
	items[0] = menu.NewSide("Caviar", d("500"))

	assert.Equal(t, "Breadsticks", o.Items()[0].Name())
	assert.Equal(t, "2", o.Total().String())
}

func TestTotalTracksItems(t *testing.T) {
	o := New("x")
	want := decimal.Zero
	for _, p := range []string{"2.00", "1.50", "0.10", "0.20"} {
		o.AddItem(menu.NewSide("s", d(p)))
		want = want.Add(d(p))
		assert.True(t, want.Equal(o.Total()), "after %s", p)
	}
	assert.Equal(t, "3.80", o.Total().StringFixed(2))
}

func TestOrdersAreIndependent(t *testing.T) {
	side := menu.NewSide("Breadsticks", d("2"))
	first := New("a")
	second := New("b")
	first.AddItem(side)

	assert.Equal(t, 1, first.Len())
	assert.Zero(t, second.Len())
	assert.NotEqual(t, first.ID(), second.ID())
}

func TestString(t *testing.T) {
	o := New("Ann",
		menu.NewPizza("Pepperoni", menu.NewTopping("pepperoni", d("0.75"))),
		menu.NewSide("Breadsticks", d("2.00")),
	)
	want := "Customer: Ann\n" +
		"Total: $9.75\n" +
		"Items\n" +
		"----------------\n" +
		"Pepperoni Pizza ($7.75)\n    pepperoni ($0.75)\n" +
		"Side: Breadsticks ($2.00)"
	assert.Equal(t, want, o.String())

	assert.Equal(t, "Customer: Bob\nTotal: $0.00\nItems\n----------------", New("Bob").String())
}
