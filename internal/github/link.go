package github

import (
	"net/url"
	"strconv"
	"strings"
)

// LastPage returns the page number of the rel="last" entry of a link header,
// e.g. `<https://api.github.com/user/1/repos?page=3>; rel="last"`.
// It returns 0 when the header has no usable rel="last" entry.
func LastPage(linkHeader string) int {
	for _, link := range strings.Split(linkHeader, ",") {
		segments := strings.Split(link, ";")
		if len(segments) < 2 {
			continue
		}

		if !hasRel(segments[1:], "last") {
			continue
		}

		target := strings.TrimSpace(segments[0])
		if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
			return 0
		}

		u, err := url.Parse(strings.Trim(target, "<>"))
		if err != nil {
			return 0
		}

		page, err := strconv.Atoi(u.Query().Get("page"))
		if err != nil || page < 0 {
			return 0
		}
		return page
	}
	return 0
}

func hasRel(params []string, rel string) bool {
	for _, param := range params {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || strings.TrimSpace(key) != "rel" {
			continue
		}
		for _, r := range strings.Fields(strings.Trim(strings.TrimSpace(value), `"`)) {
			if r == rel {
				return true
			}
		}
	}
	return false
}
