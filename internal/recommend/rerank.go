package recommend

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"movie-feels-backend/internal/models"
)

// NoneSentinel is the model's answer when no candidate fits the note.
const NoneSentinel = "NONE"

// Candidate is the only movie data sent to the language model.
type Candidate struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// BuildPrompt renders the instruction asking the model to pick, best first,
// the candidates whose storylines fit the user's note.
func BuildPrompt(notes, preference string, candidates []Candidate) (string, error) {
	list, err := json.Marshal(candidates)
	if err != nil {
		return "", fmt.Errorf("failed to encode candidates: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "User Note: %q\n", notes)
	fmt.Fprintf(&b, "User Preference: %s\n\n", preference)
	b.WriteString("TASK:\n")
	b.WriteString("Find and analyze which movies' storylines BEST FIT the user's personal situation described in their note.\n")
	b.WriteString("If preference is 'congruence', prioritize movies that match their current emotional state.\n")
	b.WriteString("If preference is 'repair', prioritize movies that could help shift their mood positively.\n")
	b.WriteString("Select only the movies that are truly relevant and helpful.\n\n")
	b.WriteString("Movies to evaluate:\n")
	b.Write(list)
	b.WriteString("\n\n")
	b.WriteString("Return ONLY a comma-separated list of the movie titles that best fit, first entry should be the best fit, second, etc.\n")
	fmt.Fprintf(&b, "If none are relevant, return %q.\n", NoneSentinel)
	return b.String(), nil
}

// ParseTitles turns the model's reply into lowercase titles in the order
// given. An empty reply or the none sentinel yields no titles.
func ParseTitles(reply string) []string {
	reply = strings.TrimSpace(reply)
	if reply == "" || strings.EqualFold(strings.Trim(reply, `"'.`), NoneSentinel) {
		return nil
	}

	var titles []string
	for _, part := range strings.Split(reply, ",") {
		title := strings.ToLower(strings.Trim(strings.TrimSpace(part), "\"'`*"))
		title = strings.TrimSpace(title)
		if title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}

// ApplySelection splits baseline-ordered movies into the model's picks, in
// the order the model listed them, followed by the rest in their original
// order. Titles compare case-insensitively; picks are marked ModelSelected
// with their score kept.
func ApplySelection(baseline []models.RankedMovie, titles []string) []models.RankedMovie {
	if len(titles) == 0 {
		return baseline
	}

	byTitle := make(map[string][]int, len(baseline))
	for i, m := range baseline {
		key := strings.ToLower(strings.TrimSpace(m.Title))
		byTitle[key] = append(byTitle[key], i)
	}

	taken := make([]bool, len(baseline))
	first := make([]models.RankedMovie, 0, len(titles))
	for _, title := range titles {
		for _, i := range byTitle[title] {
			if taken[i] {
				continue
			}
			taken[i] = true
			m := baseline[i]
			m.Match = models.ModelSelected(m.Match.Score())
			first = append(first, m)
		}
	}

	final := first
	for i, m := range baseline {
		if !taken[i] {
			final = append(final, m)
		}
	}
	return final
}

// SelectedCount counts the model-selected movies.
func SelectedCount(movies []models.RankedMovie) int {
	n := 0
	for _, m := range movies {
		if m.Match.IsModelSelected() {
			n++
		}
	}
	return n
}
