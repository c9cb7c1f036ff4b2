package roster

// SearchByID runs a recursive binary search over the backing slice. The
// store must already be sorted ascending by id (Sort with ById), the search
// does not sort on its own.
func (s *Store) SearchByID(target int) (int, bool) {
	index := s.searchRange(target, 0, len(s.students)-1)
	if index == -1 {
		return 0, false
	}
	return index, true
}

func (s *Store) searchRange(target, left, right int) int {
	if left > right {
		return -1
	}
	mid := left + (right-left)/2
	switch {
	case s.students[mid].ID == target:
		return mid
	case s.students[mid].ID > target:
		return s.searchRange(target, left, mid-1)
	}
	return s.searchRange(target, mid+1, right)
}
