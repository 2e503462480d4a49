package world

// DefaultMaxItemsPerRoom is the exclusive upper bound on items per room.
const DefaultMaxItemsPerRoom = 4

// placeItems drops between 1 and MaxItemsPerRoom-1 item markers into each
// room. Items only go into inside corners so they never cut a passage.
func (d *Dungeon) placeItems() {
	if d.MaxItemsPerRoom < 2 {
		return
	}
	start := d.Center()
	for _, room := range d.Rooms {
		var candidates []Position
		for _, p := range room.Positions() {
			if p != start && isInsideCorner(d.Cells, p) {
				candidates = append(candidates, p)
			}
		}

		n := 1 + d.rng.Intn(d.MaxItemsPerRoom-1)
		if len(candidates) <= n {
			n = len(candidates) - 1
		}
		for _, i := range d.rng.Perm(len(candidates))[:max(n, 0)] {
			// Earlier placements may have changed a neighbour.
			if isInsideCorner(d.Cells, candidates[i]) {
				_ = d.Cells.Set(candidates[i], CellItem)
			}
		}
	}
}

// isInsideCorner reports whether p is a floor cell with walls on two
// perpendicular sides and open floor on the other two sides and the diagonal
// between them. Blocking such a cell keeps its floor neighbours connected.
func isInsideCorner(cells *Grid, p Position) bool {
	if !cells.Is(p, CellFloor) {
		return false
	}
	for _, v := range []Direction{Up, Down} {
		for _, h := range []Direction{Left, Right} {
			open := Direction{DX: -h.DX, DY: -v.DY}
			if cells.Is(p.Add(v), CellWall) && cells.Is(p.Add(h), CellWall) &&
				cells.Is(p.Add(Direction{DY: open.DY}), CellFloor) &&
				cells.Is(p.Add(Direction{DX: open.DX}), CellFloor) &&
				cells.Is(p.Add(open), CellFloor) {
				return true
			}
		}
	}
	return false
}
