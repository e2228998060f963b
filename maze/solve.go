package maze

// Solve returns the path of cells from one position to another, both ends included.
// In a perfect maze the path is unique.
func (m *Maze) Solve(from, to CellPosition) ([]CellPosition, error) {
	if !m.InBound(from) || !m.InBound(to) {
		return nil, ErrOutOfBounds
	}

	parent := map[CellPosition]CellPosition{from: from}
	queue := []CellPosition{from}

	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		if cell == to {
			break
		}

		for _, nbr := range m.Neighbors(cell) {
			if _, seen := parent[nbr]; !seen {
				parent[nbr] = cell
				queue = append(queue, nbr)
			}
		}
	}

	if _, found := parent[to]; !found {
		// Unreachable for mazes built by this package.
		return nil, ErrNotPerfect
	}

	path := []CellPosition{to}
	for cell := to; cell != from; {
		cell = parent[cell]
		path = append(path, cell)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Reachable counts the cells connected to from through open passages.
func (m *Maze) Reachable(from CellPosition) int {
	if !m.InBound(from) {
		return 0
	}

	visited := map[CellPosition]struct{}{from: {}}
	stack := []CellPosition{from}

	for len(stack) > 0 {
		cell := pop(&stack)
		for _, nbr := range m.Neighbors(cell) {
			if _, seen := visited[nbr]; !seen {
				visited[nbr] = struct{}{}
				stack = append(stack, nbr)
			}
		}
	}

	return len(visited)
}

// pop removes and returns the last element of a stack of CellPositions.
func pop(s *[]CellPosition) CellPosition {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
