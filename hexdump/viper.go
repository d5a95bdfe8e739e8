package hexdump

import (
	"bytes"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var viperPrefix = "hexdump"

func ViperInit(prefix string) error {
	if prefix != "" {
		viperPrefix = prefix
	}
	ViperSetDefault("width", DefaultLineWidth)
	ViperSetDefault("offset", 0)
	ViperSetDefault("limit", -1)
	if ViperGetBool("debug") {
		var buf bytes.Buffer
		err := viper.WriteConfigTo(&buf)
		if err != nil {
			return err
		}
		log.Printf("config file: %s\n### START ###\n%s\n### END ###\n", viper.ConfigFileUsed(), buf.String())
	}
	return nil
}

func ViperKey(key string) string {
	return viperPrefix + "." + key
}

func ViperGetString(key string) string {
	return viper.GetString(ViperKey(key))
}

func ViperGetBool(key string) bool {
	return viper.GetBool(ViperKey(key))
}

func ViperGetInt(key string) int {
	return viper.GetInt(ViperKey(key))
}

func ViperSetDefault(key string, value any) {
	viper.SetDefault(ViperKey(key), value)
}

func ViperSet(key string, value any) {
	viper.Set(ViperKey(key), value)
}

// Window returns the [offset, offset+limit) slice of data selected by the
// configured offset and limit. A negative limit selects to the end.
func Window(data []byte) ([]byte, error) {
	return window(data, ViperGetInt("offset"), ViperGetInt("limit"))
}

func window(data []byte, offset, limit int) ([]byte, error) {
	if offset < 0 || offset > len(data) {
		return nil, errors.Wrapf(ErrInvalidArgument, "offset %d out of range for %d byte buffer", offset, len(data))
	}
	data = data[offset:]
	if limit >= 0 && limit < len(data) {
		data = data[:limit]
	}
	return data, nil
}

// ConfiguredDump dumps data using the configured window and line width.
func ConfiguredDump(data []byte) (*Hexdump, error) {
	data, err := Window(data)
	if err != nil {
		return nil, err
	}
	if ViperGetBool("verbose") {
		log.Printf("dumping %d bytes, width=%d\n", len(data), ViperGetInt("width"))
	}
	return New(data, len(data), ViperGetInt("width"))
}
