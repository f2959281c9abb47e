package preorder

// OrderSimple orders columns by ascending nonzero count: the cheapest
// possible preordering, useful as a baseline or when COLAMD's bookkeeping
// is not worth paying for.
//
// Steps:
//  1. Insert every column c into a bucket queue at priority len(col(c)).
//     An empty column sits in bucket 0 and is therefore ordered first —
//     the reference implementation leaves "deal with empty columns" as
//     an open TODO (it would underflow computing len-1); this resolves
//     that by treating emptiness as the cheapest column rather than an
//     invalid priority.
//  2. Repeatedly pop the minimum into New2Orig.
//  3. Derive Orig2New as New2Orig's inverse.
//
// Complexity: O(size) queue ops plus one col(c) call per column.
func OrderSimple(size int, col ColumnFunc) Perm {
	if size == 0 {
		return Perm{New2Orig: []int{}, Orig2New: []int{}}
	}

	q := newBucketQueue(size)
	for c := 0; c < size; c++ {
		q.Add(c, len(col(c)))
	}

	new2orig := make([]int, 0, size)
	for len(new2orig) < size {
		c, _ := q.PopMin()
		new2orig = append(new2orig, c)
	}

	return newPerm(new2orig)
}
