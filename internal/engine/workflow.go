package engine

import (
	"strings"

	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

// combinedContent joins the raw YAML of every workflow file. Scans that are
// case-sensitive (secret prefixes, YAML keys) read this directly.
func combinedContent(files []domain.WorkflowFile) string {
	parts := make([]string, 0, len(files))
	for _, f := range files {
		parts = append(parts, f.Content)
	}
	return strings.Join(parts, "\n")
}

// lowerContent is combinedContent lowercased for case-insensitive scans.
func lowerContent(files []domain.WorkflowFile) string {
	return strings.ToLower(combinedContent(files))
}

// containsAny reports whether content contains at least one of the keywords.
func containsAny(content string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}

// matchedKeywords returns the keywords present in content, in list order.
func matchedKeywords(content string, keywords []string) []string {
	var found []string
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			found = append(found, kw)
		}
	}
	return found
}

// hasFile reports whether the repository listing contains the exact path.
func hasFile(files []string, path string) bool {
	for _, f := range files {
		if f == path {
			return true
		}
	}
	return false
}

// hasWorkflowNamed reports whether a workflow file with one of the given
// file names exists.
func hasWorkflowNamed(files []domain.WorkflowFile, names ...string) bool {
	for _, f := range files {
		for _, name := range names {
			if f.Name == name {
				return true
			}
		}
	}
	return false
}
