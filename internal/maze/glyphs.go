package maze

// WallGlyphs maps a wall sprite index (the neighbor bitmask: N=1, S=2,
// W=4, E=8) to a box-drawing rune with stubs on those sides. Terminal
// renderers index it with DisplayCode.SpriteIndex.
var WallGlyphs = [16]rune{
	'▪', // isolated
	'╵', // N
	'╷', // S
	'│', // N+S
	'╴', // W
	'┘', // N+W
	'┐', // S+W
	'┤', // N+S+W
	'╶', // E
	'└', // N+E
	'┌', // S+E
	'├', // N+S+E
	'─', // W+E
	'┴', // N+W+E
	'┬', // S+W+E
	'┼', // all four
}
