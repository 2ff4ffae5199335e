package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// JSONResponse wraps --json output.
type JSONResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(w, "Error encoding JSON: %v\n", err)
	}
}

func printSuccess(w io.Writer, data any) {
	printJSON(w, JSONResponse{Success: true, Data: data})
}

func printJSONError(w io.Writer, err error) {
	printJSON(w, JSONResponse{Success: false, Error: err.Error()})
}
