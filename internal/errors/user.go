package errors

import "errors"

// ErrorInfo holds the user-facing message and suggested action for an error.
// Messages are French to match the rest of the product's output.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

// errorEntry pairs a sentinel error with its user-facing info.
type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries is the pre-built mapping of sentinel errors to their user-facing messages.
// This single source of truth ensures UserMessage and Actionable stay in sync.
// Using a slice (not a map) because errors.Is() requires proper error chain traversal.
//
//nolint:gochecknoglobals // Pre-built mapping for efficiency
var errorInfoEntries = []errorEntry{
	{
		err: ErrInvalidRepo,
		info: ErrorInfo{
			Message: "Le dépôt demandé n'est pas valide.",
			Action:  "Utilisez le format 'owner/repo' ou une URL https://github.com/owner/repo.",
		},
	},
	{
		err: ErrRepoAccess,
		info: ErrorInfo{
			Message: "Impossible d'accéder au dépôt.",
			Action:  "Vérifiez que le dépôt existe et, s'il est privé, fournissez un token via --token ou GITHUB_TOKEN.",
		},
	},
	{
		err: ErrAdvisoryUnavailable,
		info: ErrorInfo{
			Message: "IA non disponible : aucun token configuré.",
			Action:  "Fournissez un token GitHub avec la permission \"Models\" pour activer la revue IA.",
		},
	},
	{
		err: ErrAdvisoryToken,
		info: ErrorInfo{
			Message: "Token invalide ou permission manquante pour la revue IA.",
			Action:  "Utilisez un fine-grained token avec la permission \"Models\" (Read-only) activée.",
		},
	},
	{
		err: ErrAdvisoryRequest,
		info: ErrorInfo{
			Message: "L'appel au modèle IA a échoué.",
			Action:  "Réessayez plus tard ou désactivez la revue IA avec --no-ai.",
		},
	},
	{
		err: ErrCatalogInvalid,
		info: ErrorInfo{
			Message: "Le catalogue de checks est invalide.",
			Action:  "Ceci est un bug interne : signalez-le avec la sortie complète de la commande.",
		},
	},
	{
		err: ErrInvalidOutputFormat,
		info: ErrorInfo{
			Message: "Format de sortie non reconnu.",
			Action:  "Utilisez --output text ou --output json.",
		},
	},
}

// UserMessage returns a user-friendly message for the given error.
// Unknown errors fall back to the raw error text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Message
		}
	}
	return err.Error()
}

// Actionable returns a suggested action for the given error, or empty when
// no specific action applies.
func Actionable(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info.Action
		}
	}
	return ""
}
