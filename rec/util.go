package rec

import "strings"

// addressSeparator joins the lines of a multi-line postal address.
const addressSeparator = ", "

// flattenAddress collapses a multi-line postal address onto a single line,
// joining non-empty lines with addressSeparator.
func flattenAddress(addr string) string {
	addr = strings.ReplaceAll(addr, "\r\n", "\n")
	lines := strings.Split(addr, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, addressSeparator)
}
