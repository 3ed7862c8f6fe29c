package github

import (
	"strings"

	"github.com/FabLrc/GithubCICDChecker/internal/domain"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
)

// urlPrefixes are the repository URL forms ParseRepo strips before splitting
// the owner/name pair.
//
//nolint:gochecknoglobals // static prefix table
var urlPrefixes = []string{
	"https://github.com/",
	"http://github.com/",
	"git@github.com:",
	"github.com/",
}

// ParseRepo turns a CLI repository argument into a domain.Repo. It accepts
// the short "owner/name" form as well as github.com URLs, with or without a
// trailing ".git".
func ParseRepo(arg string) (domain.Repo, error) {
	s := strings.TrimSpace(arg)
	s = strings.TrimSuffix(s, "/")
	for _, prefix := range urlPrefixes {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			s = rest
			break
		}
	}
	s = strings.TrimSuffix(s, ".git")

	owner, name, ok := strings.Cut(s, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return domain.Repo{}, errors.Wrapf(errors.ErrInvalidRepo, "%q", arg)
	}

	return domain.Repo{Owner: owner, Name: name}, nil
}
