package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	gh "github.com/google/go-github/v66/github"
)

// TimeFormat is used for every timestamp in tool output
const TimeFormat = time.RFC3339

// NewRepositorySummary projects a remote repository onto the list view.
func NewRepositorySummary(r *gh.Repository) RepositorySummary {
	return RepositorySummary{
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Description:   r.Description,
		URL:           r.GetHTMLURL(),
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		Private:       r.GetPrivate(),
		Archived:      r.GetArchived(),
		DefaultBranch: r.GetDefaultBranch(),
		Language:      r.Language,
		Topics:        nonNil(r.Topics),
		CreatedAt:     formatTime(r.CreatedAt),
		UpdatedAt:     formatTime(r.UpdatedAt),
		PushedAt:      formatTime(r.PushedAt),
	}
}

// NewRepositoryDetail projects a remote repository onto the detail view.
func NewRepositoryDetail(r *gh.Repository) RepositoryDetail {
	var license *string
	if r.License != nil {
		license = r.License.Name
	}

	return RepositoryDetail{
		RepositorySummary: NewRepositorySummary(r),
		OpenIssuesCount:   r.GetOpenIssuesCount(),
		SubscribersCount:  r.GetSubscribersCount(),
		NetworkCount:      r.GetNetworkCount(),
		Size:              r.GetSize(),
		License:           license,
		Permissions:       repositoryPermissions(r),
	}
}

func repositoryPermissions(r *gh.Repository) RepositoryPermissions {
	return RepositoryPermissions{
		Admin: r.Permissions["admin"],
		Push:  r.Permissions["push"],
		Pull:  r.Permissions["pull"],
	}
}

// NewIssueSummary projects a remote issue onto the list view.
func NewIssueSummary(i *gh.Issue) IssueSummary {
	return IssueSummary{
		Number:      i.GetNumber(),
		Title:       i.GetTitle(),
		State:       i.GetState(),
		URL:         i.GetHTMLURL(),
		Body:        i.Body,
		CreatedAt:   formatTime(i.CreatedAt),
		UpdatedAt:   formatTime(i.UpdatedAt),
		ClosedAt:    formatTime(i.ClosedAt),
		Labels:      labelNames(i.Labels),
		Assignees:   logins(i.Assignees),
		Author:      i.GetUser().GetLogin(),
		Comments:    i.GetComments(),
		Locked:      i.GetLocked(),
		Milestone:   milestoneTitle(i.Milestone),
		PullRequest: i.IsPullRequest(),
	}
}

// NewIssueDetail projects a freshly created issue.
func NewIssueDetail(i *gh.Issue) IssueDetail {
	return IssueDetail{
		Number:    i.GetNumber(),
		Title:     i.GetTitle(),
		State:     i.GetState(),
		URL:       i.GetHTMLURL(),
		Body:      i.Body,
		CreatedAt: formatTime(i.CreatedAt),
		UpdatedAt: formatTime(i.UpdatedAt),
		Labels:    labelNames(i.Labels),
		Assignees: logins(i.Assignees),
		Author:    i.GetUser().GetLogin(),
		Comments:  i.GetComments(),
		Locked:    i.GetLocked(),
		Milestone: milestoneTitle(i.Milestone),
	}
}

// NewPullRequestSummary projects a remote pull request onto the list view.
func NewPullRequestSummary(pr *gh.PullRequest) PullRequestSummary {
	return PullRequestSummary{
		Number:         pr.GetNumber(),
		Title:          pr.GetTitle(),
		State:          pr.GetState(),
		URL:            pr.GetHTMLURL(),
		Body:           pr.Body,
		CreatedAt:      formatTime(pr.CreatedAt),
		UpdatedAt:      formatTime(pr.UpdatedAt),
		ClosedAt:       formatTime(pr.ClosedAt),
		MergedAt:       formatTime(pr.MergedAt),
		Head:           branchRef(pr.Head),
		Base:           branchRef(pr.Base),
		Author:         pr.GetUser().GetLogin(),
		Assignees:      logins(pr.Assignees),
		Labels:         labelNames(pr.Labels),
		Comments:       pr.GetComments(),
		ReviewComments: pr.GetReviewComments(),
		Commits:        pr.GetCommits(),
		Additions:      pr.GetAdditions(),
		Deletions:      pr.GetDeletions(),
		ChangedFiles:   pr.GetChangedFiles(),
		Draft:          pr.GetDraft(),
		Mergeable:      pr.Mergeable,
		MergeableState: pr.GetMergeableState(),
	}
}

// NewPullRequestDetail projects a freshly created pull request.
func NewPullRequestDetail(pr *gh.PullRequest) PullRequestDetail {
	s := NewPullRequestSummary(pr)
	return PullRequestDetail{
		Number:         s.Number,
		Title:          s.Title,
		State:          s.State,
		URL:            s.URL,
		Body:           s.Body,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		Head:           s.Head,
		Base:           s.Base,
		Author:         s.Author,
		Assignees:      s.Assignees,
		Labels:         s.Labels,
		Comments:       s.Comments,
		ReviewComments: s.ReviewComments,
		Commits:        s.Commits,
		Additions:      s.Additions,
		Deletions:      s.Deletions,
		ChangedFiles:   s.ChangedFiles,
		Draft:          s.Draft,
		Mergeable:      s.Mergeable,
		MergeableState: s.MergeableState,
	}
}

func branchRef(b *gh.PullRequestBranch) BranchRef {
	if b == nil {
		return BranchRef{}
	}

	ref := BranchRef{
		Ref:  b.GetRef(),
		SHA:  b.GetSHA(),
		User: b.GetUser().GetLogin(),
	}
	if b.Repo != nil {
		ref.Repo = b.Repo.FullName
	}
	return ref
}

// NewDirectoryEntry projects a content item without its payload.
func NewDirectoryEntry(c *gh.RepositoryContent) DirectoryEntry {
	return DirectoryEntry{
		Name:        c.GetName(),
		Path:        c.GetPath(),
		SHA:         c.GetSHA(),
		Size:        c.GetSize(),
		URL:         c.GetHTMLURL(),
		DownloadURL: c.DownloadURL,
		Type:        c.GetType(),
		Encoding:    c.Encoding,
	}
}

// NewFileContent projects a file and decodes its content to text. Binary
// files are rejected rather than mangled.
func NewFileContent(c *gh.RepositoryContent) (FileContent, error) {
	text, err := c.GetContent()
	if err != nil {
		return FileContent{}, fmt.Errorf("decode content of %s: %w", c.GetPath(), err)
	}
	if !utf8.ValidString(text) {
		return FileContent{}, fmt.Errorf("decode content of %s: not valid UTF-8 text", c.GetPath())
	}

	return FileContent{
		DirectoryEntry: NewDirectoryEntry(c),
		Content:        text,
	}, nil
}

func formatTime(ts *gh.Timestamp) *string {
	if ts == nil || ts.IsZero() {
		return nil
	}
	s := ts.UTC().Format(TimeFormat)
	return &s
}

func milestoneTitle(m *gh.Milestone) *string {
	if m == nil {
		return nil
	}
	return m.Title
}

func labelNames(labels []*gh.Label) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, l.GetName())
	}
	return out
}

func logins(users []*gh.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.GetLogin())
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
