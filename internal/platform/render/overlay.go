// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package render

// Overlay is the two-state (closed / open on one entity) detail view.
// The zero value is closed. Closing is navigation: the close control, the
// backdrop and the Escape key all lead to the page URL without ?detail=.
type Overlay struct {
	open bool
	id   int
}

// Open shows the detail of id, replacing whatever was shown before.
func (o *Overlay) Open(id int) {
	o.open = true
	o.id = id
}

// IsOpen reports whether a detail is shown.
func (o Overlay) IsOpen() bool { return o.open }

// ID returns the entity shown, zero when closed.
func (o Overlay) ID() int { return o.id }
