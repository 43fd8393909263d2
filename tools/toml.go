package tools

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DecodeToml decodes the toml file at path into the given struct pointer.
func DecodeToml(path string, v interface{}) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file %v not found: %v", path, err)
	}
	if _, err := toml.DecodeFile(path, v); err != nil {
		return fmt.Errorf("decode %v error: %v", path, err)
	}
	return nil
}
