package widgets

import (
	"fmt"

	"github.com/emberkit/ember/pkg/core"
	"github.com/emberkit/ember/pkg/dom"
)

// Image renders an img element. Src is required: rendering an Image with an
// empty Src fails with [ErrMissingArgument].
type Image struct {
	Attrs
	// Src is the image URL.
	Src string
	// OnClick is bound to the click event when set.
	OnClick dom.EventHandler
}

// ImageOf creates an image for src, failing when src is empty.
func ImageOf(src string) (Image, error) {
	if src == "" {
		return Image{}, fmt.Errorf("widgets.Image: src: %w", ErrMissingArgument)
	}
	return Image{Src: src}, nil
}

// WithClass returns a copy of the image with the given class name.
func (i Image) WithClass(name string) Image {
	i.ClassName = name
	return i
}

// WithProp returns a copy of the image with one more attribute, such as
// "alt".
func (i Image) WithProp(key, value string) Image {
	i.Attrs = i.Attrs.With(key, value)
	return i
}

// WithOnClick returns a copy of the image with the given click handler.
func (i Image) WithOnClick(h dom.EventHandler) Image {
	i.OnClick = h
	return i
}

func (i Image) Render(ctx core.BuildContext) (dom.Node, error) {
	if i.Src == "" {
		return nil, fmt.Errorf("widgets.Image: src: %w", ErrMissingArgument)
	}
	n := i.Node(ctx, "img")
	n.SetSrc(i.Src)
	bindClick(n, i.OnClick)
	return n, nil
}
