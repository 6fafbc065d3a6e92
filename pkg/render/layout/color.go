package layout

import "regexp"

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidColor reports whether s is a #rgb or #rrggbb hex color.
func ValidColor(s string) bool { return hexColorRe.MatchString(s) }
