package component

// SpriteComponent describes the visual block drawn for an entity.
// Color is packed 0xRRGGBB; the renderer maps it to the terminal palette.
type SpriteComponent struct {
	Color  uint32
	Width  int
	Height int
}

func (*SpriteComponent) Kind() Kind { return KindSprite }
