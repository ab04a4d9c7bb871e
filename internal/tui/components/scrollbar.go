package components

import "strings"

// RenderScrollbar renders a 1-column vertical scrollbar. While the content
// fits in viewHeight the column is blank so the layout width stays stable;
// once scrollable it draws a track with a thumb sized to the visible fraction.
func RenderScrollbar(viewHeight, contentHeight, yOffset int) string {
	if viewHeight <= 0 {
		return ""
	}

	const (
		track = "│"
		thumb = "█"
	)

	if contentHeight <= viewHeight {
		return strings.Repeat(" \n", viewHeight-1) + " "
	}

	thumbSize := max(viewHeight*viewHeight/contentHeight, 1)
	thumbMaxTop := viewHeight - thumbSize
	thumbTop := yOffset * thumbMaxTop / (contentHeight - viewHeight)
	thumbTop = min(max(thumbTop, 0), thumbMaxTop)

	var b strings.Builder
	for i := 0; i < viewHeight; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= thumbTop && i < thumbTop+thumbSize {
			b.WriteString(thumb)
		} else {
			b.WriteString(track)
		}
	}
	return b.String()
}
