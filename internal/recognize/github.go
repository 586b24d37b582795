package recognize

import (
	"net/url"
	"strings"

	"github.com/mdlink/mdlink/internal/config"
)

// githubRecognizer renders repository, issue, pull request, file,
// commit, and release links on github.com. It is the one recognizer
// with a configurable style: the repository prefix of the label.
type githubRecognizer struct{}

func init() {
	Register(githubRecognizer{})
}

func (githubRecognizer) Hosts() []string {
	return []string{"github.com"}
}

func (githubRecognizer) Recognize(req Request) (string, bool) {
	path := req.Path
	org, repo, ok := path.Next2()
	if !ok {
		return "", false
	}

	var prefixText string
	switch resolveRepoPrefix(req.Layers, org, repo) {
	case config.PrefixOrgAndRepo:
		prefixText = backtick(org + "/" + repo)
	case config.PrefixRepoOnly:
		prefixText = backtick(repo)
	case config.PrefixNone:
		// The label body stays empty, even for a bare repo link.
	}

	if path.Done() {
		return prefixText, true
	}

	probe := path
	if kind, num, ok := probe.Next2(); ok && (kind == "issues" || kind == "pull") {
		return prefixText + "#" + num, true
	}

	first, second, ok := path.Next2()
	if !ok {
		return "", false
	}
	switch {
	case first == "blob":
		return githubFileLabel(req.URL, prefixText, second, path), true
	case first == "commit":
		return githubCommitLabel(org, repo, second, path), true
	case first == "releases" && second == "tag":
		return githubTagLabel(path)
	}
	return "", false
}

// githubFileLabel renders "<prefix>:`<commitish>`:`<path>`" plus a line
// suffix when the fragment carries one.
func githubFileLabel(u *url.URL, prefixText, commitish string, rest Cursor) string {
	var b strings.Builder
	b.WriteString(prefixText)
	b.WriteByte(':')
	b.WriteString(backtick(commitish))
	b.WriteByte(':')
	b.WriteString(backtick(strings.Join(rest.Rest(), "/")))
	if spec, ok := parseLineSpec(u.Fragment); ok {
		writeLineSuffix(&b, spec)
	}
	return b.String()
}

// githubCommitLabel always spells out org and repo; a commit link is
// about the change, not the repository, so the prefix style does not
// apply.
func githubCommitLabel(org, repo, commitish string, rest Cursor) string {
	var b strings.Builder
	b.WriteString(backtick(org + "/" + repo))
	b.WriteByte(':')
	b.WriteString(backtick(commitish))
	if !rest.Done() {
		b.WriteByte(':')
		b.WriteString(backtick(strings.Join(rest.Rest(), "/")))
	}
	return b.String()
}

// githubTagLabel renders a release tag, splitting "<component>-v1.2.3"
// style tags into name and version. One trailing empty segment is
// tolerated; anything further declines.
func githubTagLabel(rest Cursor) (string, bool) {
	tag, ok := rest.Next()
	if !ok || !rest.doneOrTrailingSlash() {
		return "", false
	}
	if component, version, ok := splitComponentVersion(tag); ok {
		return backtick(component) + " " + version, true
	}
	return backtick(tag) + " tag release", true
}

// resolveRepoPrefix picks the prefix style for org/repo. The innermost
// layer with a repo-specific override wins, then the innermost with an
// org-wide unmatched-repo default, then org-and-repo.
func resolveRepoPrefix(layers config.Layered[*config.Layer], org, repo string) config.RepoPrefix {
	orgs := config.MapLayered(layers, func(l *config.Layer) map[string]config.OrgEntry {
		if l == nil {
			return nil
		}
		return l.Orgs
	})

	repoOverride := func(m map[string]config.OrgEntry) (config.RepoPrefix, bool) {
		entry, ok := m[org]
		if !ok {
			return "", false
		}
		r, ok := entry.Repos[repo]
		if !ok || r.Prefix == nil {
			return "", false
		}
		return *r.Prefix, true
	}
	orgDefault := func(m map[string]config.OrgEntry) (config.RepoPrefix, bool) {
		entry, ok := m[org]
		if !ok || entry.UnmatchedRepoPrefix == nil {
			return "", false
		}
		return *entry.UnmatchedRepoPrefix, true
	}

	if p, ok := config.FirstInward(orgs, repoOverride); ok {
		return p
	}
	if p, ok := config.FirstInward(orgs, orgDefault); ok {
		return p
	}
	return config.PrefixOrgAndRepo
}
