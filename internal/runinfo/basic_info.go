package runinfo

import (
	"os"
	"regexp"
	"strings"
)

var githubPullRefPattern = regexp.MustCompile(`^refs/pull/([0-9]+)/`)

// BasicInfo captures CI metadata embedded into run summaries.
type BasicInfo struct {
	CI          bool   `json:"ci,omitempty"`
	Provider    string `json:"provider,omitempty"`
	Repository  string `json:"repository,omitempty"`
	Branch      string `json:"branch,omitempty"`
	Commit      string `json:"commit,omitempty"`
	Workflow    string `json:"workflow,omitempty"`
	RunID       string `json:"run_id,omitempty"`
	PullRequest string `json:"pull_request,omitempty"`
	BuildURL    string `json:"build_url,omitempty"`
}

// FromEnv builds run metadata from environment variables.
// Explicit JOZSA_CI_* values take precedence over provider defaults.
func FromEnv() *BasicInfo {
	info := detect()
	if applyOverrides(&info) && !explicitCIFalse() {
		info.CI = true
	}
	info.Branch = strings.TrimPrefix(strings.TrimPrefix(info.Branch, "refs/heads/"), "origin/")
	if info.CI && info.Provider == "" {
		info.Provider = "generic"
	}
	if info.IsZero() {
		return nil
	}
	return &info
}

// IsZero reports whether all fields are empty.
func (b BasicInfo) IsZero() bool {
	return b == BasicInfo{}
}

func detect() BasicInfo {
	info := BasicInfo{}
	if isTruthy(env("GITHUB_ACTIONS")) {
		info.CI = true
		info.Provider = "github_actions"
		info.Repository = env("GITHUB_REPOSITORY")
		info.Branch = envFirst("GITHUB_HEAD_REF", "GITHUB_REF_NAME")
		info.Commit = env("GITHUB_SHA")
		info.Workflow = env("GITHUB_WORKFLOW")
		info.RunID = env("GITHUB_RUN_ID")
		info.PullRequest = githubPullRequestFromRef(env("GITHUB_REF"))
		serverURL := env("GITHUB_SERVER_URL")
		if serverURL == "" {
			serverURL = "https://github.com"
		}
		if info.Repository != "" && info.RunID != "" {
			info.BuildURL = strings.TrimRight(serverURL, "/") + "/" + info.Repository + "/actions/runs/" + info.RunID
		}
		return info
	}
	if isTruthy(env("GITLAB_CI")) {
		info.CI = true
		info.Provider = "gitlab_ci"
		info.Repository = env("CI_PROJECT_PATH")
		info.Branch = env("CI_COMMIT_REF_NAME")
		info.Commit = env("CI_COMMIT_SHA")
		info.RunID = env("CI_PIPELINE_ID")
		info.BuildURL = env("CI_JOB_URL")
		return info
	}
	if isTruthy(env("CI")) {
		info.CI = true
	}
	return info
}

var overrides = []struct {
	key   string
	field func(*BasicInfo) *string
}{
	{"JOZSA_CI_PROVIDER", func(b *BasicInfo) *string { return &b.Provider }},
	{"JOZSA_CI_REPOSITORY", func(b *BasicInfo) *string { return &b.Repository }},
	{"JOZSA_CI_BRANCH", func(b *BasicInfo) *string { return &b.Branch }},
	{"JOZSA_CI_COMMIT", func(b *BasicInfo) *string { return &b.Commit }},
	{"JOZSA_CI_WORKFLOW", func(b *BasicInfo) *string { return &b.Workflow }},
	{"JOZSA_CI_RUN_ID", func(b *BasicInfo) *string { return &b.RunID }},
	{"JOZSA_CI_PULL_REQUEST", func(b *BasicInfo) *string { return &b.PullRequest }},
	{"JOZSA_CI_BUILD_URL", func(b *BasicInfo) *string { return &b.BuildURL }},
}

// applyOverrides copies JOZSA_CI_* values into info and reports whether any was set.
func applyOverrides(info *BasicInfo) bool {
	explicit := false
	if v := env("JOZSA_CI"); v != "" {
		info.CI = isTruthy(v)
	}
	for _, o := range overrides {
		if v := env(o.key); v != "" {
			*o.field(info) = v
			explicit = true
		}
	}
	return explicit
}

func explicitCIFalse() bool {
	v := env("JOZSA_CI")
	return v != "" && !isTruthy(v)
}

func githubPullRequestFromRef(ref string) string {
	m := githubPullRefPattern.FindStringSubmatch(strings.TrimSpace(ref))
	if len(m) > 1 {
		return m[1]
	}
	return ""
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envFirst(keys ...string) string {
	for _, key := range keys {
		if value := env(key); value != "" {
			return value
		}
	}
	return ""
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
