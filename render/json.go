package render

import (
	"encoding/json"
	"io"

	ubl "github.com/macroservices/ubl.aunz"
)

// JSON writes the view as indented JSON.
func JSON(w io.Writer, v *ubl.View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
