package tools

import (
	"context"
	"fmt"

	"github.com/honeycarbs/github-mcp/internal/catalog"
	"github.com/honeycarbs/github-mcp/internal/domain"
	"github.com/honeycarbs/github-mcp/pkg/logging"
)

type contentTools struct {
	client GitHubClient
	logger *logging.Logger
}

var refParam = catalog.Param{Name: "ref", Type: catalog.TypeString, Description: "Branch/tag/commit reference"}

// WithContentTools registers get_file_content and list_directory
func WithContentTools(client GitHubClient, logger *logging.Logger) Option {
	return func(reg *registry) error {
		t := contentTools{client: client, logger: logger}

		if err := reg.add("get_file_content",
			"Get the content of a file in a repository",
			catalog.Object(
				ownerParam,
				repoParam,
				catalog.Param{Name: "path", Type: catalog.TypeString, Description: "File path in repository", Required: true},
				refParam,
			),
			t.getFileContent,
		); err != nil {
			return err
		}

		return reg.add("list_directory",
			"List contents of a directory in a repository",
			catalog.Object(
				ownerParam,
				repoParam,
				catalog.Param{Name: "path", Type: catalog.TypeString, Description: "Directory path", Default: ""},
				refParam,
			),
			t.listDirectory,
		)
	}
}

func (t contentTools) getFileContent(ctx context.Context, args catalog.Args) (catalog.Result, error) {
	owner, repo, err := repoRef(args)
	if err != nil {
		return catalog.Result{}, err
	}
	path, err := args.String("path")
	if err != nil {
		return catalog.Result{}, err
	}
	ref, err := args.StringOr("ref", "")
	if err != nil {
		return catalog.Result{}, err
	}

	t.logger.Debug("get_file_content called", "owner", owner, "repo", repo, "path", path, "ref", ref)

	contents, err := t.client.GetContents(ctx, owner, repo, path, ref)
	if err != nil {
		return catalog.Result{}, err
	}
	if contents.IsDirectory() {
		return catalog.Result{}, catalog.ClientInputf("path %q is a directory, not a file", path)
	}

	file, err := domain.NewFileContent(contents.File)
	if err != nil {
		return catalog.Result{}, fmt.Errorf("get_file_content: %w", err)
	}
	return catalog.JSONResult(file)
}

func (t contentTools) listDirectory(ctx context.Context, args catalog.Args) (catalog.Result, error) {
	owner, repo, err := repoRef(args)
	if err != nil {
		return catalog.Result{}, err
	}
	path, err := args.StringOr("path", "")
	if err != nil {
		return catalog.Result{}, err
	}
	ref, err := args.StringOr("ref", "")
	if err != nil {
		return catalog.Result{}, err
	}

	t.logger.Debug("list_directory called", "owner", owner, "repo", repo, "path", path, "ref", ref)

	contents, err := t.client.GetContents(ctx, owner, repo, path, ref)
	if err != nil {
		return catalog.Result{}, err
	}

	if !contents.IsDirectory() {
		return catalog.JSONResult([]domain.DirectoryEntry{domain.NewDirectoryEntry(contents.File)})
	}
	return catalog.JSONResult(mapAll(contents.Directory, domain.NewDirectoryEntry))
}
