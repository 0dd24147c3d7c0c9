package collections

import "strings"

// DotSegmenter segments string key paths by dot separators. For example,
// "a.b.c" -> ("a", 1), (".b", 3), (".c", -1) in successive calls. It does
// not allocate any heap memory.
func DotSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
