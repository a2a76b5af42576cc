// SPDX-License-Identifier: MIT
// Package: numeric/render
//
// options.go — functional options for figure rendering.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Rendering routines never panic on user data; they return errors.

package render

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Figure sizes of the programs.
const (
	DefaultWidth         = 8 * vg.Inch
	DefaultHeight        = 5 * vg.Inch
	ComparisonWidth      = 15 * vg.Inch
	DefaultCurveSamples  = 1000
	DefaultFormat        = "png"
	annotationLeftFrac   = 0.02
	annotationTopFrac    = 0.95
	annotationStepFrac   = 0.05
	verticalHeadroomFrac = 0.12
)

var supportedFormats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tex": true, "tif": true, "tiff": true,
}

// Option customizes one rendering call.
type Option func(*config)

type config struct {
	width, height vg.Length
	samples       int
	format        string
	title         string
}

func newConfig(width vg.Length, opts ...Option) config {
	c := config{
		width:   width,
		height:  DefaultHeight,
		samples: DefaultCurveSamples,
		format:  DefaultFormat,
	}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// WithSize overrides the figure size. Panics if either side is not positive.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("render: WithSize(%v, %v)", w, h))
	}
	return func(c *config) {
		c.width, c.height = w, h
	}
}

// WithSamples sets how many points are used to draw a continuous curve.
// Panics if n < 2.
func WithSamples(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("render: WithSamples(%d)", n))
	}
	return func(c *config) {
		c.samples = n
	}
}

// WithFormat selects the image format for Write* routines
// (png, svg, pdf, jpg, tiff, eps, tex). Panics on unknown formats.
func WithFormat(format string) Option {
	f := strings.ToLower(format)
	if !supportedFormats[f] {
		panic(fmt.Sprintf("render: WithFormat(%q)", format))
	}
	return func(c *config) {
		c.format = f
	}
}

// WithTitle overrides the figure title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}
