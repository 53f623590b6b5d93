package util

// RemoveDuplicateStrings keeps the first occurrence of every string, dropping empty
// strings and anything in ignoreList.
func RemoveDuplicateStrings(strings []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range strings {
		if _, value := presentStrings[item]; !value && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}
	return list
}

// TrimString cuts s to at most length runes and marks the cut with an ellipsis.
func TrimString(s string, length int) string {
	if length <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= length {
		return s
	}
	if length <= 1 {
		return string(runes[:length])
	}

	return string(runes[:length-1]) + "…"
}
