package github

import (
	"context"
	"path"
	"strings"

	gh "github.com/google/go-github/v80/github"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

const workflowDir = ".github/workflows"

// fetchWorkflows lists .github/workflows/ and downloads each YAML file. A 404
// on the directory is a known-empty result; any other listing failure leaves
// the fact unknown. A file that fails to download keeps its name with empty
// content so existence checks still see it.
func (c *Client) fetchWorkflows(ctx context.Context, repo domain.Repo, ref string) domain.Fact[[]domain.WorkflowFile] {
	logger := zerolog.Ctx(ctx)

	var entries []*gh.RepositoryContent
	err := withRateLimitRetry(ctx, func() error {
		var resp *gh.Response
		var listErr error
		_, entries, resp, listErr = c.repositories.GetContents(ctx, repo.Owner, repo.Name, workflowDir, &gh.RepositoryContentGetOptions{Ref: ref})
		if isNotFound(resp, listErr) {
			entries = nil
			return nil
		}
		return listErr
	})
	if err != nil {
		logger.Debug().Err(err).Msg("workflow directory listing failed")
		return domain.UnknownFact[[]domain.WorkflowFile]("Impossible de lire le dossier .github/workflows/")
	}

	workflows := make([]domain.WorkflowFile, 0, len(entries))
	for _, entry := range entries {
		name := entry.GetName()
		ext := strings.ToLower(path.Ext(name))
		if entry.GetType() != "file" || (ext != ".yml" && ext != ".yaml") {
			continue
		}

		content, fetchErr := c.fetchFileContent(ctx, repo, entry.GetPath(), ref)
		if fetchErr != nil {
			logger.Debug().Err(fetchErr).Str("workflow", name).Msg("workflow download failed")
			content = ""
		}

		wf := domain.WorkflowFile{Name: name, Path: entry.GetPath(), Content: content}
		wf.OnPush, wf.OnDispatch, wf.OnCall = parseTriggers(content)
		workflows = append(workflows, wf)
	}

	return domain.KnownFact(workflows)
}

// fetchFileContent downloads a single file and decodes its content.
func (c *Client) fetchFileContent(ctx context.Context, repo domain.Repo, filePath, ref string) (string, error) {
	var file *gh.RepositoryContent
	err := withRateLimitRetry(ctx, func() error {
		var fetchErr error
		file, _, _, fetchErr = c.repositories.GetContents(ctx, repo.Owner, repo.Name, filePath, &gh.RepositoryContentGetOptions{Ref: ref})
		return fetchErr
	})
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", nil
	}
	return file.GetContent()
}

// parseTriggers extracts the push, workflow_dispatch and workflow_call
// triggers from a workflow file. The "on" key is read from raw YAML nodes
// because bare "on" resolves to a boolean scalar, and malformed YAML falls
// back to substring heuristics.
func parseTriggers(content string) (onPush, onDispatch, onCall bool) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil || len(doc.Content) == 0 {
		return fallbackTriggers(content)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fallbackTriggers(content)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "on" {
			continue
		}
		names := triggerNames(root.Content[i+1])
		for _, name := range names {
			switch name {
			case "push":
				onPush = true
			case "workflow_dispatch":
				onDispatch = true
			case "workflow_call":
				onCall = true
			}
		}
		return onPush, onDispatch, onCall
	}

	return false, false, false
}

// triggerNames flattens the value of an "on" key, which may be a scalar, a
// sequence or a mapping of trigger names.
func triggerNames(value *yaml.Node) []string {
	switch value.Kind {
	case yaml.ScalarNode:
		return []string{value.Value}
	case yaml.SequenceNode:
		names := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			names = append(names, item.Value)
		}
		return names
	case yaml.MappingNode:
		names := make([]string, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			names = append(names, value.Content[i].Value)
		}
		return names
	}
	return nil
}

func fallbackTriggers(content string) (onPush, onDispatch, onCall bool) {
	onPush = strings.Contains(content, "push:") || strings.Contains(content, "[push")
	onDispatch = strings.Contains(content, "workflow_dispatch")
	onCall = strings.Contains(content, "workflow_call")
	return onPush, onDispatch, onCall
}
