// Package send writes HTTP responses with their content type set.
package send

import (
	"encoding/json"
	"io"
	"net/http"

	"gopkg.in/yaml.v3"

	"github.com/rohanthewiz/urlresolve/consts"
)

// HTML sends the body with the content type set to `text/html`.
func HTML(w http.ResponseWriter, status int, body string) error {
	w.Header().Set(consts.HeaderContentType, consts.MIMEHTML)
	w.WriteHeader(status)
	_, err := io.WriteString(w, body)
	return err
}

// JSON encodes the object in JSON format and sends it with the content type set to `application/json`.
func JSON(w http.ResponseWriter, status int, object any) error {
	w.Header().Set(consts.HeaderContentType, consts.MIMEJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(object)
}

// YAML encodes the object in YAML format and sends it with the content type set to `application/yaml`.
func YAML(w http.ResponseWriter, status int, object any) error {
	w.Header().Set(consts.HeaderContentType, consts.MIMEYAML)
	w.WriteHeader(status)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(object); err != nil {
		return err
	}
	return enc.Close()
}

// Text sends the body with the content type set to `text/plain`.
func Text(w http.ResponseWriter, status int, body string) error {
	w.Header().Set(consts.HeaderContentType, consts.MIMETextPlain)
	w.WriteHeader(status)
	_, err := io.WriteString(w, body)
	return err
}
