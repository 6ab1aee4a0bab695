package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ReadJSONArg decodes a JSON flag value into v. A value starting with "@"
// names a file; anything else is treated as inline JSON. Structured inputs
// (section lists, checklists) are too awkward for flags, so the CLI takes
// them this way.
func ReadJSONArg(arg string, v any) error {
	data := []byte(arg)
	if strings.HasPrefix(arg, "@") {
		var err error
		data, err = os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return fmt.Errorf("read %s: %w", strings.TrimPrefix(arg, "@"), err)
		}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse JSON input: %w", err)
	}
	return nil
}

// PrintJSON writes v to stdout as indented JSON.
func PrintJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
