package model

// CountLiveNeighbors sums the live cells around p using the neighbor set of
// p's topology class, so no lookup ever leaves the board.
func CountLiveNeighbors(b *Board, p Position) int {
	count := 0
	for _, o := range Classify(p, b.size).Offsets() {
		count += int(b.cells[p.Row+o.DRow][p.Col+o.DCol])
	}
	return count
}
