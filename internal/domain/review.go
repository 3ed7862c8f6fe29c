package domain

// Priority ranks an AI recommendation by impact.
type Priority string

// Priority levels from most to least urgent.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Label returns the French display name for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "Haute priorité"
	case PriorityMedium:
		return "Priorité moyenne"
	case PriorityLow:
		return "Faible priorité"
	default:
		return string(p)
	}
}

// Color returns the display color for the priority, reusing the grade palette.
func (p Priority) Color() string {
	switch p {
	case PriorityHigh:
		return "#ff4e42"
	case PriorityMedium:
		return "#ffa400"
	case PriorityLow:
		return "#0cce6b"
	default:
		return "#ffa400"
	}
}

// Recommendation is one actionable improvement suggested by the AI review.
// The jsonschema tags shape the strict response schema sent to the model.
type Recommendation struct {
	// Title is a short French headline.
	Title string `json:"title" jsonschema_description:"Titre court de la recommandation"`

	// Description details the change to make and why.
	Description string `json:"description" jsonschema_description:"Description détaillée et actionnable"`

	// Priority ranks the recommendation by impact.
	Priority Priority `json:"priority" jsonschema:"enum=high,enum=medium,enum=low" jsonschema_description:"Priorité de la recommandation"`
}

// Review is the AI-generated commentary on a score report. It is additive:
// attaching a review never changes scores or verdicts.
type Review struct {
	// Summary is a two-to-three sentence French overview of the CI/CD posture.
	Summary string `json:"summary" jsonschema_description:"Résumé global en 2-3 phrases"`

	// Recommendations lists three to six prioritized improvements.
	Recommendations []Recommendation `json:"recommendations" jsonschema_description:"Recommandations priorisées par impact"`
}
