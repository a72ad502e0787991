//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"mad-terrain/internal/core"
)

type dirtyReporter interface {
	Dirty() bool
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	statusColor = color.RGBA{R: 150, G: 170, B: 150, A: 255}
	headerColor = color.RGBA{R: 170, G: 170, B: 190, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	ruleColor   = color.RGBA{R: 44, G: 46, B: 54, A: 255}
)

// HUD renders the parameter panel to the right of the terrain view, grouped
// the way the target reports its parameters.
type HUD struct {
	target     core.Tunable
	width      int
	panel      *ebiten.Image
	lastHeight int
	status     string
	title      string

	rows     []hudRow
	controls []controlState
	values   map[string]string

	panelOffsetX int
	pixel        *ebiten.Image
}

type controlState struct {
	control   core.ParameterControl
	value     float64
	hasValue  bool
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for target with the given panel width.
func NewHUD(target core.Tunable, width int) *HUD {
	h := &HUD{target: target, width: max(width, 0), values: map[string]string{}}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(target)

	controls := target.ParameterControls()
	h.controls = make([]controlState, len(controls))
	for i, c := range controls {
		h.controls[i].control = c
	}
	h.rows = layoutRows(target.Parameters(), controls, rowsTop)
	for _, r := range h.rows {
		if r.kind == rowControl {
			h.controls[r.control].plusRect, h.controls[r.control].minusRect = h.buttonRects(r.top)
		}
	}
	return h
}

// SetStatus replaces the line drawn under the title.
func (h *HUD) SetStatus(status string) {
	if h != nil {
		h.status = status
	}
}

// Update refreshes the displayed values and handles clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.refresh()
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the terrain view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.target.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawHeader(basicfont.Face7x13)
	h.drawRows(basicfont.Face7x13)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(target core.Tunable) string {
	name := target.Name()
	if name == "" {
		return "Parameters"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func (h *HUD) refresh() {
	clear(h.values)
	for _, g := range h.target.Parameters().Groups {
		for _, p := range g.Params {
			h.values[p.Key] = p.Value
		}
	}
	for i := range h.controls {
		c := &h.controls[i]
		raw, ok := h.values[c.control.Key]
		if ok {
			c.value, ok = parseValue(c.control, raw)
		}
		c.hasValue = ok
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.panelOffsetX
	if px < 0 {
		return
	}
	pt := image.Pt(px, my)
	for i := range h.controls {
		c := &h.controls[i]
		if !c.hasValue {
			continue
		}
		switch {
		case pt.In(c.minusRect):
			h.apply(c, -1)
			return
		case pt.In(c.plusRect):
			h.apply(c, 1)
			return
		}
	}
}

func (h *HUD) apply(c *controlState, dir int) {
	next, ok := nudge(c.control, c.value, dir)
	if !ok {
		return
	}
	var set bool
	if c.control.Type == core.ParamTypeInt {
		set = h.target.SetIntParameter(c.control.Key, int(next))
	} else {
		set = h.target.SetFloatParameter(c.control.Key, next)
	}
	if set {
		c.value = next
	}
}

func (h *HUD) drawHeader(face font.Face) {
	title := h.title
	if d, ok := h.target.(dirtyReporter); ok && d.Dirty() {
		title += " *"
	}
	y := panelPadding + headerBaseline
	text.Draw(h.panel, title, face, panelPadding, y, titleColor)
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, y+statusSpacing, statusColor)
	}
}

func (h *HUD) drawRows(face font.Face) {
	for _, r := range h.rows {
		if r.top+rowHeight(r.kind) > h.lastHeight-panelPadding {
			return
		}
		switch r.kind {
		case rowHeader:
			h.fillRect(image.Rect(panelPadding, r.top+2, h.width-panelPadding, r.top+3), ruleColor)
			text.Draw(h.panel, r.label, face, panelPadding, r.top+headerRowHeight-4, headerColor)
		case rowInfo:
			text.Draw(h.panel, r.label+": "+h.values[r.key], face, panelPadding+indent, r.top+infoRowHeight-2, mutedColor)
		case rowControl:
			h.drawControl(face, r)
		}
	}
}

func (h *HUD) drawControl(face font.Face, r hudRow) {
	c := &h.controls[r.control]
	baseline := r.top + (controlRowHeight+face.Metrics().Ascent.Ceil())/2
	text.Draw(h.panel, r.label, face, panelPadding+indent, baseline, labelColor)

	value, col := "--", mutedColor
	if c.hasValue {
		value, col = formatValue(c.control, c.value), labelColor
	}
	w := text.BoundString(face, value).Dx()
	text.Draw(h.panel, value, face, c.minusRect.Min.X-buttonGap-w, baseline, col)

	_, canDec := nudge(c.control, c.value, -1)
	_, canInc := nudge(c.control, c.value, 1)
	h.drawButton(face, c.minusRect, "-", c.hasValue && canDec)
	h.drawButton(face, c.plusRect, "+", c.hasValue && canInc)
}

func (h *HUD) drawButton(face font.Face, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil || rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

// buttonRects places the +/- pair against the right edge of a control row.
func (h *HUD) buttonRects(top int) (plus, minus image.Rectangle) {
	y := top + (controlRowHeight-buttonSize)/2
	plus = image.Rect(h.width-panelPadding-buttonSize, y, h.width-panelPadding, y+buttonSize)
	minus = plus.Sub(image.Pt(buttonSize+buttonGap, 0))
	return plus, minus
}

const (
	panelPadding   = 12
	buttonSize     = 22
	buttonGap      = 6
	indent         = 8
	headerBaseline = 18
	statusSpacing  = 16
	rowsTop        = panelPadding + headerBaseline + statusSpacing + 8
)
