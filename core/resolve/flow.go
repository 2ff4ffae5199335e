package resolve

// flow tells the resolve loop what to do after trying a child.
//
// A child's miss is an ordinary value rather than an error, so the loop
// can record it and carry on with the next sibling.
type flow int

const (
	// flowStop means the child matched; its Match is the result.
	flowStop flow = iota

	// flowNext means the child did not match; record the attempt and try the next sibling.
	flowNext

	// flowAbort means the child failed with an error that ends resolution.
	flowAbort
)
