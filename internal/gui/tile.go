package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"superlauncher/internal/models"
)

// itemTile is one pinned item on screen: an icon above a caption in
// grid mode, or an icon beside it in list mode. It launches on tap,
// shows the item menu on right click, and supports drag reordering.
type itemTile struct {
	widget.BaseWidget

	m          *Manager
	item       models.PinnedItem
	pos        int // position among the visible tiles
	horizontal bool

	img       *canvas.Image
	label     *widget.Label
	dragDelta fyne.Position
	dragging  bool
}

var _ fyne.Tappable = (*itemTile)(nil)
var _ fyne.SecondaryTappable = (*itemTile)(nil)
var _ fyne.Draggable = (*itemTile)(nil)
var _ desktop.Hoverable = (*itemTile)(nil)
var _ desktop.Cursorable = (*itemTile)(nil)

func newItemTile(m *Manager, item models.PinnedItem, pos int, horizontal bool, res fyne.Resource) *itemTile {
	t := &itemTile{
		m:          m,
		item:       item,
		pos:        pos,
		horizontal: horizontal,
	}

	t.img = canvas.NewImageFromResource(res)
	t.img.FillMode = canvas.ImageFillContain
	size := float32(gridIconSize)
	if horizontal {
		size = listIconSize
	}
	t.img.SetMinSize(fyne.NewSize(size, size))

	t.label = widget.NewLabel(item.DisplayName())
	t.label.Truncation = fyne.TextTruncateEllipsis
	if !horizontal {
		t.label.Alignment = fyne.TextAlignCenter
	}

	t.ExtendBaseWidget(t)
	return t
}

func (t *itemTile) CreateRenderer() fyne.WidgetRenderer {
	var content fyne.CanvasObject
	if t.horizontal {
		content = container.NewBorder(nil, nil, t.img, nil, t.label)
	} else {
		content = container.NewVBox(container.NewCenter(t.img), t.label)
	}
	return widget.NewSimpleRenderer(content)
}

func (t *itemTile) Tapped(_ *fyne.PointEvent) {
	if t.dragging {
		return
	}
	if t.m.cb.OnLaunch != nil {
		t.m.cb.OnLaunch(t.item, t.item.LaunchKindOrDefault())
	}
}

func (t *itemTile) TappedSecondary(e *fyne.PointEvent) {
	t.m.showItemMenu(t.item, e.AbsolutePosition)
}

func (t *itemTile) Dragged(e *fyne.DragEvent) {
	t.dragging = true
	t.dragDelta = t.dragDelta.AddXY(e.Dragged.DX, e.Dragged.DY)
}

func (t *itemTile) DragEnd() {
	delta := t.dragDelta
	t.dragDelta = fyne.Position{}
	t.dragging = false
	t.m.handleDrag(t.pos, delta)
}

func (t *itemTile) MouseIn(_ *desktop.MouseEvent) {
	t.img.Translucency = 0.3
	t.img.Refresh()
}

func (t *itemTile) MouseMoved(_ *desktop.MouseEvent) {}

func (t *itemTile) MouseOut() {
	t.img.Translucency = 0
	t.img.Refresh()
}

func (t *itemTile) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}
