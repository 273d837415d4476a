package view

// View writes itself for a terminal of the given width and returns the number of lines written.
type View interface {
	Render(width int) (lines int)
}
