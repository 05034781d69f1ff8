package tools

import (
	"github.com/honeycarbs/github-mcp/internal/catalog"
)

// listLimit caps every listing tool
const listLimit = 10

// firstN keeps at most listLimit items in remote order
func firstN[T any](items []T) []T {
	if len(items) > listLimit {
		return items[:listLimit]
	}
	return items
}

// mapAll projects remote items, always yielding a non-nil slice
func mapAll[In, Out any](items []In, fn func(In) Out) []Out {
	out := make([]Out, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}

// Parameters shared by every repository-scoped tool.
var (
	ownerParam = catalog.Param{Name: "owner", Type: catalog.TypeString, Description: "Repository owner", Required: true}
	repoParam  = catalog.Param{Name: "repo", Type: catalog.TypeString, Description: "Repository name", Required: true}
	stateParam = catalog.Param{
		Name:    "state",
		Type:    catalog.TypeString,
		Enum:    []string{"open", "closed", "all"},
		Default: "open",
	}
)

// repoRef reads the owner/repo pair every repository-scoped tool requires
func repoRef(args catalog.Args) (owner, repo string, err error) {
	if owner, err = args.String("owner"); err != nil {
		return "", "", err
	}
	if repo, err = args.String("repo"); err != nil {
		return "", "", err
	}
	return owner, repo, nil
}
