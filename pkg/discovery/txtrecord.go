package discovery

import "strings"

// encodeDescriptionTXT builds the TXT strings a daemon advertises.
func encodeDescriptionTXT(description string) []string {
	if description == "" {
		return nil
	}
	return []string{TXTKeyDescription + "=" + description}
}

// decodeDescriptionTXT extracts the context description from TXT
// strings, "" when absent.
func decodeDescriptionTXT(txt []string) string {
	for _, record := range txt {
		key, value, ok := strings.Cut(record, "=")
		if ok && key == TXTKeyDescription {
			return value
		}
	}
	return ""
}
