package maze

// Player is the controlled entity. Pos is the center of its bounding box,
// which is exactly one tile in size. Actual is the direction it is moving
// in; Desired is the direction the last key press asked for, held until it
// becomes legal.
type Player struct {
	Pos     Vec
	Actual  Direction
	Desired Direction
}

// BoundingBox returns the player's tile-sized collision box.
func (p Player) BoundingBox() Rect {
	return boxAt(p.Pos)
}

func boxAt(center Vec) Rect {
	half := TileSize / 2
	return Rect{X: center.X - half, Y: center.Y - half, W: TileSize, H: TileSize}
}

// DrawKind discriminates the draw commands emitted by a simulation.
type DrawKind uint8

const (
	DrawWall DrawKind = iota
	DrawPelletSmall
	DrawPelletBig
	DrawPlayer
)

// DrawCommand tells the rendering collaborator to draw one element at a
// pixel position. For walls, SpriteIndex in [0,15] selects the junction
// sprite; the renderer resolves it to a concrete image or glyph. Tile
// positions are top-left corners; the player position is the top-left of
// its bounding box.
type DrawCommand struct {
	Kind        DrawKind
	SpriteIndex int
	X, Y        float64
	Facing      Direction // Player only
}

// Simulation owns the level grid, its derived display grid and the player.
// The host loop drives it: one Step per frame tick, then DrawCommands for
// the render pass. The grid is read-only for the simulation's lifetime.
type Simulation struct {
	grid    *Grid
	display DisplayGrid
	player  Player
	speed   float64
	spawn   Vec
}

// SimConfig parameterizes a simulation. Zero values fall back to the
// classic defaults.
type SimConfig struct {
	Speed    float64 // pixels per second
	SpawnCol float64 // spawn center in tile units
	SpawnRow float64
}

// NewSimulation builds a simulation over a grid. The spawn point is a tile
// center so that the player's bounding box starts aligned to a single tile;
// the box-corner collision test requires that alignment to hold at rest.
func NewSimulation(g *Grid, cfg SimConfig) *Simulation {
	if cfg.Speed <= 0 {
		cfg.Speed = PlayerSpeed
	}
	if cfg.SpawnCol == 0 && cfg.SpawnRow == 0 {
		cfg.SpawnCol, cfg.SpawnRow = 13.5, 23.5
	}

	spawn := Vec{
		X: cfg.SpawnCol * TileSize,
		Y: cfg.SpawnRow*TileSize + MazeOffsetY,
	}
	return &Simulation{
		grid:    g,
		display: Encode(g),
		player:  Player{Pos: spawn},
		speed:   cfg.Speed,
		spawn:   spawn,
	}
}

// Grid returns the logical grid.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Display returns the derived display grid.
func (s *Simulation) Display() DisplayGrid {
	return s.display
}

// Player returns the current player state.
func (s *Simulation) Player() Player {
	return s.player
}

// Reset puts the player back at the spawn point, stopped.
func (s *Simulation) Reset() {
	s.player = Player{Pos: s.spawn}
}

// Step advances the simulation by dt seconds. desired is the direction the
// input collaborator currently asks for; Stopped means no request.
//
// A requested turn is adopted the instant one step in that direction is
// legal, not only at tile centers. Movement in the adopted direction then
// commits only if the moved bounding box stays walkable; otherwise the
// player halts in place rather than clamping to the wall.
func (s *Simulation) Step(dt float64, desired Direction) {
	if desired != Stopped {
		s.player.Desired = desired
	}

	step := s.speed * dt

	if s.player.Desired != Stopped && s.player.Desired != s.player.Actual {
		if IsRectWalkable(boxAt(s.moved(s.player.Desired, step)), s.grid) {
			s.player.Actual = s.player.Desired
		}
	}

	if s.player.Actual == Stopped {
		return
	}

	next := s.moved(s.player.Actual, step)
	if IsRectWalkable(boxAt(next), s.grid) {
		s.player.Pos = next
	} else {
		s.player.Actual = Stopped
	}
}

func (s *Simulation) moved(d Direction, step float64) Vec {
	dx, dy := d.Delta()
	return s.player.Pos.Add(dx*step, dy*step)
}

// DrawCommands returns the draw list for the current state: one command per
// visible tile in row-major order, then the player. Positions follow the
// (col*TileSize, row*TileSize+MazeOffsetY) convention.
func (s *Simulation) DrawCommands() []DrawCommand {
	cmds := make([]DrawCommand, 0, s.grid.Width()*s.grid.Height()+1)

	for row := 0; row < s.grid.Height(); row++ {
		for col := 0; col < s.grid.Width(); col++ {
			x := float64(col) * TileSize
			y := float64(row)*TileSize + MazeOffsetY

			code := s.display.At(col, row)
			switch {
			case code.IsWall():
				cmds = append(cmds, DrawCommand{
					Kind:        DrawWall,
					SpriteIndex: code.SpriteIndex(),
					X:           x,
					Y:           y,
				})
			case Tile(code) == TilePelletSmall:
				cmds = append(cmds, DrawCommand{Kind: DrawPelletSmall, X: x, Y: y})
			case Tile(code) == TilePelletBig:
				cmds = append(cmds, DrawCommand{Kind: DrawPelletBig, X: x, Y: y})
			}
		}
	}

	box := s.player.BoundingBox()
	cmds = append(cmds, DrawCommand{
		Kind:   DrawPlayer,
		X:      box.X,
		Y:      box.Y,
		Facing: s.player.Actual,
	})
	return cmds
}
