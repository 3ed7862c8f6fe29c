package engine

import (
	"strings"

	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

//nolint:gochecknoglobals // Fixed keyword table shared by the scans
var dockerBuildKeywords = []string{
	"docker build", "docker/build-push-action", "docker-build",
	"docker compose", "docker/setup-buildx",
}

func evalDockerfileExists(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	return fileExistsResult(def, snap, "Dockerfile")
}

func evalDockerBuildCI(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	if !containsAny(content, dockerBuildKeywords) {
		return domain.FailResult(def.ID,
			"Aucune étape de build Docker dans les workflows",
			"Ajoutez 'docker build' ou l'action 'docker/build-push-action' dans votre pipeline")
	}
	return domain.PassResult(def.ID, "Build Docker détecté dans la CI")
}

func evalGHCRPublished(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)

	hasGHCR := strings.Contains(content, "ghcr.io") ||
		strings.Contains(content, "github container registry") ||
		(strings.Contains(content, "docker/build-push-action") &&
			strings.Contains(content, "registry: ghcr"))
	hasPush := strings.Contains(content, "push: true") ||
		strings.Contains(content, "docker push") ||
		strings.Contains(content, "build-push-action")

	switch {
	case hasGHCR && hasPush:
		return domain.PassResult(def.ID, "Publication vers ghcr.io détectée dans le pipeline")
	case hasGHCR:
		return domain.WarnResult(def.ID,
			"Référence à ghcr.io trouvée mais pas d'étape de push explicite",
			"Assurez-vous d'utiliser 'docker/build-push-action' avec 'push: true' et 'registry: ghcr.io'")
	default:
		return domain.FailResult(def.ID,
			"Aucune publication vers GHCR détectée",
			"Ajoutez 'docker/build-push-action' avec 'registry: ghcr.io' pour publier votre image")
	}
}
