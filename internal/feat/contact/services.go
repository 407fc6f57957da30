package contact

import (
	"bytes"
	"encoding/json"
)

// EncodeServices serializes the services list into its stored text form,
// a JSON array of strings. A nil list is stored as "[]".
func EncodeServices(services []string) string {
	if services == nil {
		services = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(services); err != nil {
		return "[]"
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

// DecodeServices parses a stored services value. Empty or corrupt input
// yields an empty list, never an error.
func DecodeServices(stored string) []string {
	if stored == "" {
		return []string{}
	}

	var items []*string
	if err := json.Unmarshal([]byte(stored), &items); err != nil {
		return []string{}
	}

	services := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			return []string{}
		}
		services = append(services, *item)
	}
	return services
}
