// response/links.go
package response

import (
	"strings"
)

// parseLinks parses an RFC 5988 Link header of the form
//
//	<https://api.github.com/resource?page=2>; rel="next", <https://api.github.com/resource?page=5>; rel="last"
//
// into a map from rel value to URL. Malformed segments are skipped.
func parseLinks(linkHeader string) map[string]string {
	links := map[string]string{}
	if linkHeader == "" {
		return links
	}

	for _, segment := range strings.Split(linkHeader, ",") {
		parts := strings.Split(segment, ";")
		if len(parts) < 2 {
			continue
		}

		target := strings.TrimSpace(parts[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			continue
		}
		target = strings.Trim(target, "<>")

		for _, param := range parts[1:] {
			param = strings.TrimSpace(param)
			if !strings.HasPrefix(param, "rel=") {
				continue
			}
			rel := strings.Trim(strings.TrimPrefix(param, "rel="), `"`)
			links[rel] = target
		}
	}

	return links
}
