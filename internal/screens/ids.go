package screens

import (
	"fmt"
	"strconv"
	"strings"
)

// NextID returns the id following the highest one in existing. With an
// empty prefix ids are plain integers; otherwise they look like PFX-007 and
// only the digits after the last dash count.
func NextID(prefix string, existing []string) string {
	highest := 0
	for _, id := range existing {
		var digits string
		if prefix == "" {
			digits = id
		} else {
			if !strings.HasPrefix(id, prefix+"-") {
				continue
			}
			digits = id[strings.LastIndex(id, "-")+1:]
		}
		if n, err := strconv.Atoi(digits); err == nil && n > highest {
			highest = n
		}
	}
	if prefix == "" {
		return strconv.Itoa(highest + 1)
	}
	return fmt.Sprintf("%s-%03d", prefix, highest+1)
}
