package directive

import (
	"strings"
)

// ParseSetting parses a NAME=VALUE setting, where VALUE follows the .SET
// directive grammar.
func ParseSetting(text string) (name string, value Value, err error) {
	name, raw, ok := strings.Cut(text, "=")
	if !ok {
		err = ErrArgumentMissing
		return
	}

	args, err := ScanTwo(" " + name + " " + raw)
	if err != nil {
		return
	}

	value, err = Resolve(args.Value, args.Quoted)
	if err != nil {
		return
	}

	name = args.Name
	return
}
