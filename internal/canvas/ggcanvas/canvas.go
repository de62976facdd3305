// Package ggcanvas implements the chart canvas on top of the gogpu/gg
// 2D renderer, committing pages as PNG files.
package ggcanvas

import (
	"fmt"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas is a gg-backed page canvas. It satisfies chart.PageCanvas.
type Canvas struct {
	dc    *gg.Context
	fonts *ggtext.FontSource
}

// New creates a white page of the given pixel size. Text is set in Go
// Regular, embedded so charts render identically on any machine.
func New(width, height int) (*Canvas, error) {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)

	fonts, err := ggtext.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}

	return &Canvas{dc: dc, fonts: fonts}, nil
}

func (c *Canvas) SetRGB(r, g, b float64) {
	c.dc.SetRGB(r, g, b)
}

func (c *Canvas) SetLineWidth(w float64) {
	c.dc.SetLineWidth(w)
}

func (c *Canvas) SetDash(lengths ...float64) {
	c.dc.SetDash(lengths...)
}

func (c *Canvas) ClearDash() {
	c.dc.ClearDash()
}

func (c *Canvas) DrawCircle(x, y, r float64, filled bool) {
	c.dc.DrawCircle(x, y, r)
	if filled {
		_ = c.dc.Fill()
		return
	}
	_ = c.dc.Stroke()
}

func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	c.dc.DrawLine(x1, y1, x2, y2)
	_ = c.dc.Stroke()
}

func (c *Canvas) DrawText(x, y float64, s string, size float64) {
	c.dc.SetFont(c.fonts.Face(size))
	c.dc.DrawString(s, x, y)
}

// Save commits the page to a PNG file and releases the context.
func (c *Canvas) Save(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return c.dc.Close()
}
