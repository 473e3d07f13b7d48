package github_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thassiov/challenge/internal/github"
)

func TestLastPage(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"empty header", "", 0},
		{
			"next and last",
			`<https://api.github.com/user/583231/repos?per_page=30&type=owner&page=2>; rel="next", <https://api.github.com/user/583231/repos?per_page=30&type=owner&page=3>; rel="last"`,
			3,
		},
		{
			"last listed first",
			`<https://api.github.com/repos/o/r/branches?page=7>; rel="last", <https://api.github.com/repos/o/r/branches?page=2>; rel="next"`,
			7,
		},
		{
			"no last relation",
			`<https://api.github.com/user/1/repos?page=1>; rel="prev", <https://api.github.com/user/1/repos?page=1>; rel="first"`,
			0,
		},
		{"page is not a number", `<https://api.github.com/user/1/repos?page=abc>; rel="last"`, 0},
		{"missing page parameter", `<https://api.github.com/user/1/repos?per_page=30>; rel="last"`, 0},
		{"missing angle brackets", `https://api.github.com/user/1/repos?page=4; rel="last"`, 0},
		{"extra whitespace", `  <https://api.github.com/user/1/repos?page=5>  ;   rel="last"  `, 5},
		{"unquoted rel", `<https://api.github.com/user/1/repos?page=5>; rel=last`, 5},
		{"multiple relation types", `<https://api.github.com/user/1/repos?page=9>; rel="next last"`, 9},
		{"garbage", `this is not a link header`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, github.LastPage(tt.header))
		})
	}
}
