package domain

// Records returned to tool callers. Nullable remote fields are pointers
// without omitempty so absent values encode as explicit null.

// RepositorySummary is the list view of a repository
type RepositorySummary struct {
	Name          string   `json:"name"`
	FullName      string   `json:"full_name"`
	Description   *string  `json:"description"`
	URL           string   `json:"url"`
	Stars         int      `json:"stars"`
	Forks         int      `json:"forks"`
	Private       bool     `json:"private"`
	Archived      bool     `json:"archived"`
	DefaultBranch string   `json:"default_branch"`
	Language      *string  `json:"language"`
	Topics        []string `json:"topics"`
	CreatedAt     *string  `json:"created_at"`
	UpdatedAt     *string  `json:"updated_at"`
	PushedAt      *string  `json:"pushed_at"`
}

// RepositoryPermissions reflects what the authenticated user may do
type RepositoryPermissions struct {
	Admin bool `json:"admin"`
	Push  bool `json:"push"`
	Pull  bool `json:"pull"`
}

// RepositoryDetail is the single-repository view
type RepositoryDetail struct {
	RepositorySummary
	OpenIssuesCount  int                   `json:"open_issues_count"`
	SubscribersCount int                   `json:"subscribers_count"`
	NetworkCount     int                   `json:"network_count"`
	Size             int                   `json:"size"`
	License          *string               `json:"license"`
	Permissions      RepositoryPermissions `json:"permissions"`
}

// IssueDetail is returned after creating an issue
type IssueDetail struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	State     string   `json:"state"`
	URL       string   `json:"url"`
	Body      *string  `json:"body"`
	CreatedAt *string  `json:"created_at"`
	UpdatedAt *string  `json:"updated_at"`
	Labels    []string `json:"labels"`
	Assignees []string `json:"assignees"`
	Author    string   `json:"author"`
	Comments  int      `json:"comments"`
	Locked    bool     `json:"locked"`
	Milestone *string  `json:"milestone"`
}

// IssueSummary is the list view of an issue. Pull requests show up in issue
// listings too; PullRequest tells them apart.
type IssueSummary struct {
	Number      int      `json:"number"`
	Title       string   `json:"title"`
	State       string   `json:"state"`
	URL         string   `json:"url"`
	Body        *string  `json:"body"`
	CreatedAt   *string  `json:"created_at"`
	UpdatedAt   *string  `json:"updated_at"`
	ClosedAt    *string  `json:"closed_at"`
	Labels      []string `json:"labels"`
	Assignees   []string `json:"assignees"`
	Author      string   `json:"author"`
	Comments    int      `json:"comments"`
	Locked      bool     `json:"locked"`
	Milestone   *string  `json:"milestone"`
	PullRequest bool     `json:"pull_request"`
}

// BranchRef flattens a pull request head or base
type BranchRef struct {
	Ref  string  `json:"ref"`
	SHA  string  `json:"sha"`
	User string  `json:"user"`
	Repo *string `json:"repo"`
}

// PullRequestDetail is returned after creating a pull request
type PullRequestDetail struct {
	Number         int       `json:"number"`
	Title          string    `json:"title"`
	State          string    `json:"state"`
	URL            string    `json:"url"`
	Body           *string   `json:"body"`
	CreatedAt      *string   `json:"created_at"`
	UpdatedAt      *string   `json:"updated_at"`
	Head           BranchRef `json:"head"`
	Base           BranchRef `json:"base"`
	Author         string    `json:"author"`
	Assignees      []string  `json:"assignees"`
	Labels         []string  `json:"labels"`
	Comments       int       `json:"comments"`
	ReviewComments int       `json:"review_comments"`
	Commits        int       `json:"commits"`
	Additions      int       `json:"additions"`
	Deletions      int       `json:"deletions"`
	ChangedFiles   int       `json:"changed_files"`
	Draft          bool      `json:"draft"`
	Mergeable      *bool     `json:"mergeable"`
	MergeableState string    `json:"mergeable_state"`
}

// PullRequestSummary is the list view of a pull request
type PullRequestSummary struct {
	Number         int       `json:"number"`
	Title          string    `json:"title"`
	State          string    `json:"state"`
	URL            string    `json:"url"`
	Body           *string   `json:"body"`
	CreatedAt      *string   `json:"created_at"`
	UpdatedAt      *string   `json:"updated_at"`
	ClosedAt       *string   `json:"closed_at"`
	MergedAt       *string   `json:"merged_at"`
	Head           BranchRef `json:"head"`
	Base           BranchRef `json:"base"`
	Author         string    `json:"author"`
	Assignees      []string  `json:"assignees"`
	Labels         []string  `json:"labels"`
	Comments       int       `json:"comments"`
	ReviewComments int       `json:"review_comments"`
	Commits        int       `json:"commits"`
	Additions      int       `json:"additions"`
	Deletions      int       `json:"deletions"`
	ChangedFiles   int       `json:"changed_files"`
	Draft          bool      `json:"draft"`
	Mergeable      *bool     `json:"mergeable"`
	MergeableState string    `json:"mergeable_state"`
}

// DirectoryEntry is one item of a directory listing
type DirectoryEntry struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	SHA         string  `json:"sha"`
	Size        int     `json:"size"`
	URL         string  `json:"url"`
	DownloadURL *string `json:"download_url"`
	Type        string  `json:"type"`
	Encoding    *string `json:"encoding"`
}

// FileContent is a single file with its decoded text
type FileContent struct {
	DirectoryEntry
	Content string `json:"content"`
}
