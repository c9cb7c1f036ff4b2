package roster

type SortKey int

const (
	ById SortKey = iota
	ByAverage
)

type SortMethod int

const (
	Bubble SortMethod = iota + 1
	Insertion
	Merge
)

// compare returns <0, 0 or >0 like strcmp, under the chosen key.
func compare(a, b *Student, key SortKey) int {
	if key == ById {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	}
	switch {
	case a.Average < b.Average:
		return -1
	case a.Average > b.Average:
		return 1
	}
	return 0
}

// Sort reorders the backing slice in place, ascending by key. All three
// methods land on the same final order, they only move elements differently.
// An unknown method falls back to merge.
func (s *Store) Sort(method SortMethod, key SortKey) {
	if len(s.students) <= 1 {
		return
	}
	switch method {
	case Bubble:
		s.bubbleSort(key)
	case Insertion:
		s.insertionSort(key)
	default:
		s.mergeSort(0, len(s.students)-1, key)
	}
}

// bubbleSort stops early once a full pass performs no swap.
func (s *Store) bubbleSort(key SortKey) {
	students := s.students
	for i := 0; i < len(students)-1; i++ {
		swapped := false
		for j := 0; j < len(students)-1-i; j++ {
			if compare(students[j], students[j+1], key) > 0 {
				students[j], students[j+1] = students[j+1], students[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}

func (s *Store) insertionSort(key SortKey) {
	students := s.students
	for i := 1; i < len(students); i++ {
		current := students[i]
		j := i - 1
		for j >= 0 && compare(students[j], current, key) > 0 {
			students[j+1] = students[j]
			j--
		}
		students[j+1] = current
	}
}

func (s *Store) mergeSort(left, right int, key SortKey) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	s.mergeSort(left, mid, key)
	s.mergeSort(mid+1, right, key)
	s.merge(left, mid, right, key)
}

// merge combines two sorted halves through auxiliary buffers. The left
// element wins ties, which keeps the sort stable.
func (s *Store) merge(left, mid, right int, key SortKey) {
	students := s.students

	l := make([]*Student, mid-left+1)
	r := make([]*Student, right-mid)
	copy(l, students[left:mid+1])
	copy(r, students[mid+1:right+1])

	i, j, k := 0, 0, left
	for i < len(l) && j < len(r) {
		if compare(l[i], r[j], key) <= 0 {
			students[k] = l[i]
			i++
		} else {
			students[k] = r[j]
			j++
		}
		k++
	}
	for i < len(l) {
		students[k] = l[i]
		i++
		k++
	}
	for j < len(r) {
		students[k] = r[j]
		j++
		k++
	}
}
