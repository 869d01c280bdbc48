package components

// ItemKind identifies a placeable item
type ItemKind uint8

const (
	ItemApple ItemKind = iota
	ItemBall
)

// String returns the item name, also used as the sprite key
func (k ItemKind) String() string {
	switch k {
	case ItemApple:
		return "apple"
	case ItemBall:
		return "ball"
	default:
		return "unknown"
	}
}

// Item is a pending item the otter is drawn to
type Item struct {
	Kind ItemKind
	Pos  Vec2
}
