package consts

const (
	MIMETextPlain = "text/plain"
	MIMEJSON      = "application/json"
	MIMEHTML      = "text/html"
	MIMEYAML      = "application/yaml"
)

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
)
