package utils

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa in com indentação; []byte é reindentado
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			logrus.WithError(err).Warn("utils: invalid json")
			return string(raw)
		}
		in = v
	}

	out, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		logrus.WithError(err).Warn("utils: failed to marshal json")
		return ""
	}

	return string(out)
}
