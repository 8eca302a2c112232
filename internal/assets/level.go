package assets

// Level geometry: 8 pages of 8 tiles.
const (
	LevelCols  = 8
	LevelPages = 8
)

// Cell is one level tile. Stop cells halt a walking player who reaches the
// tile's left boundary.
type Cell struct {
	Tile Tile
	Stop bool
}

func open(tile Tile) Cell { return Cell{Tile: tile} }
func stop(tile Tile) Cell { return Cell{Tile: tile, Stop: true} }

// floors are the even pages 0, 2, 4, 6.
var floors = [LevelPages / 2][LevelCols]Cell{
	{open(TileHealthLabel), open(TileHealthBar), open(TileEmpty), open(TileEmpty), open(TileEmpty), open(TileEmpty), open(TileEmpty), open(TileFinish)},
	{stop(TileWall), open(TileLadder), open(TileEmpty), stop(TileCoverRight), stop(TileCoverLeft), open(TileEmpty), open(TileEmpty), stop(TileLadder)},
	{stop(TileEmpty), stop(TileLadder), open(TileEmpty), open(TileEmpty), stop(TileCoverRight), stop(TileCoverLeft), open(TileLadder), stop(TileEmpty)},
	{stop(TileEmpty), open(TileEmpty), stop(TileCoverRight), stop(TileCoverLeft), open(TileEmpty), open(TileEmpty), stop(TileLadder), stop(TileWall)},
}

// Level is the full map. Odd pages are derived from the floor above them:
// ladder bricks under the last plain ladder or finish tile, bricks elsewhere.
var Level = buildLevel(floors)

func buildLevel(fl [LevelPages / 2][LevelCols]Cell) [LevelPages][LevelCols]Cell {
	var lv [LevelPages][LevelCols]Cell
	for r, row := range fl {
		lv[2*r] = row

		shaft := -1
		for c, cell := range row {
			if !cell.Stop && (cell.Tile == TileLadder || cell.Tile == TileFinish) {
				shaft = c
			}
		}
		for c := range lv[2*r+1] {
			lv[2*r+1][c] = open(TileBricks)
			if c == shaft {
				lv[2*r+1][c] = open(TileLadderBricks)
			}
		}
	}
	return lv
}

// CellAt returns the cell under column x of page p.
func CellAt(p, x int) Cell {
	if p < 0 || p >= LevelPages || x < 0 || x >= LevelCols*TileWidth {
		return Cell{}
	}
	return Level[p][x/TileWidth]
}
