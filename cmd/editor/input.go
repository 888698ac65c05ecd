package main

import (
	"github.com/RezixDev/map-editor/levels"
	"github.com/RezixDev/map-editor/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func (e *Editor) Update() error {
	if e.statusLeft > 0 {
		e.statusLeft--
	}
	e.drainWatcher()
	if e.prompt.Update() {
		return nil
	}

	e.updateKeys()
	e.updateMouse()
	return nil
}

func pressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (e *Editor) updateKeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	alt := ebiten.IsKeyPressed(ebiten.KeyAlt)

	if ctrl {
		switch {
		case pressed(ebiten.KeyZ) && shift, pressed(ebiten.KeyY):
			e.redo()
		case pressed(ebiten.KeyZ):
			e.undo()
		case pressed(ebiten.KeyS):
			e.save()
		case pressed(ebiten.KeyO):
			e.prompt.Open("Open level:", e.path, func(p string) { e.load(p) })
		case pressed(ebiten.KeyC):
			e.copySelection()
		case pressed(ebiten.KeyX):
			e.cutSelection()
		case pressed(ebiten.KeyV):
			e.pasteAt(e.hoverX, e.hoverY)
		case pressed(ebiten.KeyG):
			if e.selection != nil {
				e.prompt.Open("Component name:", "", e.captureGroup)
			}
		case pressed(ebiten.KeyR):
			e.prompt.Open("Layer name:", e.session.ActiveLayer().Name, e.renameLayer)
		}
		return
	}

	if alt {
		switch {
		case pressed(ebiten.KeyArrowUp):
			e.moveLayer(1)
		case pressed(ebiten.KeyArrowDown):
			e.moveLayer(-1)
		}
		return
	}

	switch {
	case pressed(ebiten.KeyB):
		e.session.Tool = session.ToolBrush
	case pressed(ebiten.KeyE):
		e.session.Tool = session.ToolErase
	case pressed(ebiten.KeyF):
		e.session.Tool = session.ToolFill
	case pressed(ebiten.KeyS):
		e.session.Tool = session.ToolSelect
	case pressed(ebiten.KeyX):
		e.session.ToggleFlip()
	case pressed(ebiten.KeyG):
		e.generate()
	case pressed(ebiten.KeyN):
		e.session.AddLayer("")
	case pressed(ebiten.KeyV):
		e.toggleVisible()
	case pressed(ebiten.KeyPageUp):
		e.stepLayer(1)
	case pressed(ebiten.KeyPageDown):
		e.stepLayer(-1)
	case pressed(ebiten.KeyBracketLeft):
		e.cycleGroup(-1)
	case pressed(ebiten.KeyBracketRight):
		e.cycleGroup(1)
	case pressed(ebiten.KeyMinus):
		e.resizeGroup(-1)
	case pressed(ebiten.KeyEqual):
		e.resizeGroup(1)
	case pressed(ebiten.KeyDelete) && shift:
		e.removeLayer()
	case pressed(ebiten.KeyDelete), pressed(ebiten.KeyBackspace):
		e.deleteSelection()
	case pressed(ebiten.KeyEscape):
		e.selection = nil
	case pressed(ebiten.KeyP):
		e.probe(e.hoverX, e.hoverY)
	case pressed(ebiten.KeyF1):
		e.showHelp = !e.showHelp
	}
	for i, k := range digitKeys {
		if pressed(k) {
			e.session.SelectTile(i + 1)
			e.session.Tool = session.ToolBrush
		}
	}
}

func (e *Editor) updateMouse() {
	mx, my := ebiten.CursorPosition()
	e.hoverX, e.hoverY = e.view.ScreenToCell(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		e.panning = true
		e.lastMX, e.lastMY = mx, my
	}
	if e.panning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		e.view.Pan(mx-e.lastMX, my-e.lastMY)
		e.lastMX, e.lastMY = mx, my
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		e.panning = false
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		factor := 1.1
		if wy < 0 {
			factor = 1 / factor
		}
		e.view.ZoomAt(mx, my, factor)
	}

	// right drag always erases
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && !e.session.Stroking() {
		e.prevTool = e.session.Tool
		e.session.Tool = session.ToolErase
		e.rightErase = true
		e.beginStroke(e.hoverX, e.hoverY)
	}
	if e.rightErase {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			e.dragStroke(e.hoverX, e.hoverY)
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
			e.endStroke()
			e.session.Tool = e.prevTool
			e.rightErase = false
		}
		return
	}

	left := ebiten.MouseButtonLeft
	switch e.session.Tool {
	case session.ToolBrush, session.ToolErase:
		if inpututil.IsMouseButtonJustPressed(left) {
			e.beginStroke(e.hoverX, e.hoverY)
		} else if ebiten.IsMouseButtonPressed(left) {
			e.dragStroke(e.hoverX, e.hoverY)
		}
		if inpututil.IsMouseButtonJustReleased(left) {
			e.endStroke()
		}
	case session.ToolFill:
		if inpututil.IsMouseButtonJustPressed(left) {
			if n := e.session.Fill(e.hoverX, e.hoverY); n > 0 {
				e.setStatus("filled %d cells", n)
			}
		}
	case session.ToolSelect:
		if inpututil.IsMouseButtonJustPressed(left) {
			e.selecting = true
			e.selStart = levels.Point{X: e.hoverX, Y: e.hoverY}
		}
		if e.selecting {
			r := levels.Normalize(e.selStart.X, e.selStart.Y, e.hoverX, e.hoverY)
			e.selection = &r
		}
		if inpututil.IsMouseButtonJustReleased(left) {
			e.selecting = false
		}
	}
}
