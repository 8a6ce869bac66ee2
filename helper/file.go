package helper

import "strings"

// SanitizeFilename replaces every byte outside [A-Za-z0-9._-] with an
// underscore so caller data can be placed in a Content-Disposition header.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			b.WriteByte(c)
		case c == '.' || c == '_' || c == '-':
			b.WriteByte(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ContentDisposition builds an inline disposition for {prefix}_{id}.png.
func ContentDisposition(prefix, id string) (header string, filename string) {
	filename = prefix + "_" + SanitizeFilename(id) + ".png"
	return `inline; filename="` + filename + `"`, filename
}
