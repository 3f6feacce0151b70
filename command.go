package softframe

import "github.com/gogpu/softframe/text"

// CommandType identifies the kind of a queued drawing command.
type CommandType uint8

const (
	CmdRect CommandType = iota // Fill a rectangle
	CmdFont                    // Draw a shaped glyph run
)

var commandTypeNames = [...]string{
	CmdRect: "Rect",
	CmdFont: "Font",
}

// String returns the command name.
func (t CommandType) String() string {
	if int(t) < len(commandTypeNames) {
		return commandTypeNames[t]
	}
	return "Unknown"
}

// RenderCommand is one queued drawing operation. Rect commands use Rect and
// Color; font commands use Font, Text, X, Y, PtSize and Color.
//
// Text is a Go string, so the command owns an immutable snapshot of what
// the caller passed.
type RenderCommand struct {
	Type  CommandType
	Rect  Rect
	Color Color

	Font   text.FontID
	Text   string
	X, Y   int
	PtSize int
}

// Equal reports whether two commands would rasterize identically.
// Colors compare by exact channel equality.
func (c *RenderCommand) Equal(o *RenderCommand) bool {
	if c.Type != o.Type || c.Color != o.Color {
		return false
	}
	switch c.Type {
	case CmdRect:
		return c.Rect == o.Rect
	case CmdFont:
		return c.Font == o.Font &&
			c.X == o.X && c.Y == o.Y &&
			c.PtSize == o.PtSize &&
			c.Text == o.Text
	default:
		return *c == *o
	}
}
