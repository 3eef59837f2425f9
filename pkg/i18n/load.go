package i18n

import (
	"github.com/BurntSushi/toml"

	"github.com/archigen/archigen/pkg/errors"
)

// Load reads a dictionary from a TOML file with [layers],
// [relationships] and [elements] tables. Missing tables are allowed;
// lookups fall back per Dictionary semantics.
func Load(path string) (*Dictionary, error) {
	var d Dictionary
	if _, err := toml.DecodeFile(path, &d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "loading language file %s", path)
	}
	return &d, nil
}
