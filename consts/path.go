package consts

const (
	PathSep     = "/"
	DefaultRoot = "/"
)

const (
	// SegmentCapture matches one path segment: anything up to the next separator.
	SegmentCapture = `([^/]+)`

	// PlaceholderExpr finds `:name` placeholders in a template.
	PlaceholderExpr = `:(\w+)`
)

const (
	DefaultListen     = ":8080"
	DefaultConfigName = "urlresolve"
	EnvPrefix         = "URLRESOLVE"
	SchemeS3          = "s3://"
)
