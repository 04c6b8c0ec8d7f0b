package interactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSkipsNilGetters(t *testing.T) {
	d := Descriptor{Reference: func(Props) Props {
		return Props{"id": "ref"}
	}}

	composed := Compose(d, Descriptor{})

	assert.Equal(t, "ref", composed.ReferenceProps(nil).String("id"))
	assert.Empty(t, composed.FloatingProps(nil))
	assert.Empty(t, composed.ItemProps(nil, ItemState{}))
}

func TestComposeIsDeterministic(t *testing.T) {
	contribution := func(order *[]string, tag string) Descriptor {
		return Descriptor{Reference: func(Props) Props {
			return Props{"onClick": appendHandler(order, tag)}
		}}
	}

	for range 10 {
		var order []string
		props := Compose(
			contribution(&order, "a"),
			contribution(&order, "b"),
			contribution(&order, "c"),
		).ReferenceProps(nil)

		props.Dispatch("onClick", &Event{Type: EventClick})
		require.Equal(t, []string{"a", "b", "c"}, order)
	}
}

func TestGettersReceiveBase(t *testing.T) {
	var seen Props
	d := Descriptor{Floating: func(base Props) Props {
		seen = base
		return nil
	}}

	base := Props{"id": "float"}
	Compose(d).FloatingProps(base)
	assert.Equal(t, base, seen)
}

func TestItemPropsThreadsState(t *testing.T) {
	d := Descriptor{Item: func(_ Props, st ItemState) Props {
		p := Props{"index": st.Index}
		if st.Active {
			p["active"] = "true"
		}
		if st.Selected {
			p["selected"] = "true"
		}
		return p
	}}
	composed := Compose(d)

	props := composed.ItemProps(nil, ItemState{Index: 2, Active: true})
	assert.Equal(t, 2, props["index"])
	assert.Equal(t, "true", props.String("active"))
	assert.Equal(t, "", props.String("selected"))

	props = composed.ItemProps(nil, ItemState{Index: 0, Selected: true})
	assert.Equal(t, 0, props["index"])
	assert.Equal(t, "true", props.String("selected"))
}

func TestGetterPanicPropagates(t *testing.T) {
	d := Descriptor{Reference: func(Props) Props {
		panic("getter failure")
	}}

	assert.PanicsWithValue(t, "getter failure", func() {
		Compose(d).ReferenceProps(nil)
	})
}
