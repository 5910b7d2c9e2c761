package nodeinterface

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MarshalID builds a global object identifier from a type name and an
// arbitrary spec value. The result is opaque to clients and is the usual
// identifying argument value for a node query.
func MarshalID(kind string, spec interface{}) string {
	d, err := json.Marshal(spec)
	if err != nil {
		panic(fmt.Errorf("nodeinterface.MarshalID: %s", err))
	}
	return base64.URLEncoding.EncodeToString(append([]byte(kind+":"), d...))
}

// UnmarshalKind extracts the type name from a global object identifier. It
// returns "" if id is not well formed.
func UnmarshalKind(id string) string {
	s, err := base64.URLEncoding.DecodeString(id)
	if err != nil {
		return ""
	}
	i := strings.IndexByte(string(s), ':')
	if i == -1 {
		return ""
	}
	return string(s[:i])
}

// UnmarshalSpec decodes the spec part of a global object identifier into v.
func UnmarshalSpec(id string, v interface{}) error {
	s, err := base64.URLEncoding.DecodeString(id)
	if err != nil {
		return err
	}
	i := strings.IndexByte(string(s), ':')
	if i == -1 {
		return errors.New("invalid global id")
	}
	return json.Unmarshal([]byte(s[i+1:]), v)
}
