package resolve

// Parameter is a captured path parameter paired with its placeholder name.
//
// Example:
//
//	Template: users/:id/posts/:postId/
//	Path:     users/123/posts/456/
//	Result:   []Parameter{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
//
// Ordered like the placeholders, outermost Resolver first.
type Parameter struct {
	Key   string
	Value string
}
