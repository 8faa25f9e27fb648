package httpapi

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/ironsheep/image-artifex/internal/transform"
)

type operation func(h *Handler, im *transform.Image, q params, bg transform.Background) error

// params reads typed query parameters. Missing parameters yield the given
// default; malformed ones an errBadRequest.
type params struct {
	url.Values
}

func (p params) intParam(name string, def int) (int, error) {
	s := p.Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", errBadRequest, name, err)
	}
	return v, nil
}

func (p params) floatParam(name string, def float64) (float64, error) {
	s := p.Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", errBadRequest, name, err)
	}
	return v, nil
}

func (p params) size() (w, h int, err error) {
	if w, err = p.intParam("width", 0); err != nil {
		return 0, 0, err
	}
	if h, err = p.intParam("height", 0); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

var operations = map[string]operation{
	"resize": func(_ *Handler, im *transform.Image, q params, bg transform.Background) error {
		w, h, err := q.size()
		if err != nil {
			return err
		}
		return im.Resize(w, h, bg)
	},
	"crop": func(_ *Handler, im *transform.Image, q params, bg transform.Background) error {
		w, h, err := q.size()
		if err != nil {
			return err
		}
		x, err := q.intParam("x", 0)
		if err != nil {
			return err
		}
		y, err := q.intParam("y", 0)
		if err != nil {
			return err
		}
		return im.Crop(x, y, w, h, bg)
	},
	"cut": func(_ *Handler, im *transform.Image, q params, bg transform.Background) error {
		w, h, err := q.size()
		if err != nil {
			return err
		}
		return im.Cut(w, h, bg)
	},
	"thumb": func(_ *Handler, im *transform.Image, q params, bg transform.Background) error {
		w, h, err := q.size()
		if err != nil {
			return err
		}
		return im.Thumb(w, h, bg)
	},
	"reduce": func(_ *Handler, im *transform.Image, q params, _ transform.Background) error {
		w, h, err := q.size()
		if err != nil {
			return err
		}
		return im.Reduce(w, h)
	},
	"rotate": func(_ *Handler, im *transform.Image, q params, bg transform.Background) error {
		deg, err := q.floatParam("degrees", 0)
		if err != nil {
			return err
		}
		return im.Rotate(deg, bg)
	},
	"opacity": func(_ *Handler, im *transform.Image, q params, _ transform.Background) error {
		percent, err := q.intParam("percent", 100)
		if err != nil {
			return err
		}
		im.Opacity(percent)
		return nil
	},
	"watermark": func(h *Handler, im *transform.Image, q params, _ transform.Background) error {
		mark := q.Get("mark")
		if mark == "" {
			return fmt.Errorf("%w: mark is required", errBadRequest)
		}
		opacity, err := q.intParam("opacity", transform.DefaultWatermarkOpacity)
		if err != nil {
			return err
		}
		return im.Watermark(h.resolve(mark), q.Get("position"), opacity)
	},
}
