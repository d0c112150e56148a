// Package render holds the drawing contract the game core renders through.
// The core only ever clears, fills rectangles, and draws strings in virtual
// pixel coordinates; how those land on a screen is the surface's problem.
package render

// Color is a packed 0xRRGGBB value.
type Color uint32

// Common palette entries used by the HUD and level factories.
const (
	ColorSky    Color = 0x58C8F8
	ColorGround Color = 0x00C040
	ColorPlayer Color = 0x4060FF
	ColorEnemy  Color = 0xE03030
	ColorCoin   Color = 0xF8D820
	ColorWhite  Color = 0xFFFFFF
	ColorBlack  Color = 0x000000
	ColorYellow Color = 0xF8F800
	ColorRed    Color = 0xF80000
)

// Surface is the external drawing collaborator. All coordinates are virtual
// display pixels with the origin at the top-left; implementations scale to
// their real resolution. The core calls it read-only with respect to world
// state, once per frame, after collision resolution.
type Surface interface {
	// Size returns the virtual pixel dimensions of the drawable area.
	Size() (w, h int)
	// Clear fills the whole surface with one color.
	Clear(bg Color)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h int, c Color)
	// DrawString renders text with the top-left corner at (x, y).
	DrawString(x, y int, text string, fg, bg Color)
	// Flush presents the completed frame.
	Flush()
}
