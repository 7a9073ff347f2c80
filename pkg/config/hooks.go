package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

var fileModeType = reflect.TypeOf(os.FileMode(0))

// stringToFileModeHookFunc decodes octal strings such as "0777" or "0o666"
// into os.FileMode. TOML integers (0o777 literals) pass through untouched.
func stringToFileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != fileModeType || f.Kind() != reflect.String {
			return data, nil
		}
		s := strings.TrimPrefix(strings.TrimSpace(data.(string)), "0o")
		mode, err := strconv.ParseUint(s, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid file mode %q: %w", data, err)
		}
		return os.FileMode(mode), nil
	}
}
