// Package widgets provides the built-in Ember widgets.
//
// Every widget renders to exactly one host element with a fixed tag:
//
//	Container  div
//	Button     button
//	Anchor     a
//	Link       a
//	Text       p
//	Image      img
//
// # Widget Construction
//
// Widgets are plain structs. The struct literal is the canonical form and
// every field is documented with its default:
//
//	widgets.Container{
//	    Attrs: widgets.Attrs{ClassName: "card"},
//	    Children: []core.Widget{
//	        widgets.Text{Content: "Hello"},
//	        widgets.Button{Text: "Save", OnClick: save},
//	    },
//	}
//
// XxxOf helpers cover the common cases, and WithX methods return a copy with
// one field changed; they never mutate the receiver:
//
//	widgets.ButtonOf("Save", save).WithClass("primary")
//
// # Attributes
//
// [Attrs] is embedded in every widget. ClassName sets the element's class
// and Props adds arbitrary attributes, applied in sorted key order so that
// output is deterministic.
//
// # Rendering
//
// Render creates a fresh, detached node tree on every call. Nothing is
// cached between renders and two renders of equal widgets produce equal but
// distinct trees.
package widgets
