package observable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellNotifiesInRegistrationOrder(t *testing.T) {
	cell := NewCell(1)

	var order []string
	cell.Subscribe(func(int) { order = append(order, "first") })
	cell.Subscribe(func(int) { order = append(order, "second") })
	cell.Subscribe(func(int) { order = append(order, "third") })

	cell.Set(2)

	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, 2, cell.Get())
}

func TestCellSkipsEqualValue(t *testing.T) {
	cell := NewCell("metric")

	calls := 0
	cell.Subscribe(func(string) { calls++ })

	cell.Set("metric")
	assert.Equal(t, 0, calls)

	cell.Set("imperial")
	assert.Equal(t, 1, calls)
}

func TestCellUnsubscribe(t *testing.T) {
	cell := NewCell(0.0)

	var a, b int
	stopA := cell.Subscribe(func(float64) { a++ })
	cell.Subscribe(func(float64) { b++ })

	cell.Set(1.5)
	stopA()
	stopA()
	cell.Set(2.5)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Equal(t, 1, cell.ListenerCount())
}

func TestCellListenerCanReadCell(t *testing.T) {
	cell := NewCell(false)

	var seen bool
	cell.Subscribe(func(bool) { seen = cell.Get() })

	cell.Update(func(v bool) bool { return !v })

	assert.True(t, seen)
}
