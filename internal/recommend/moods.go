// Package recommend holds the mood matching and ranking rules used to turn a
// mood selection into an ordered list of movies.
package recommend

import "strings"

const (
	MoodLove       = "Love · Romance · Family · Community · Belonging · Home"
	MoodHappy      = "Happy · Playful · Bright · Feel-good · Carefree"
	MoodHopeful    = "Hopeful · Healing · Optimistic · Reassuring"
	MoodExcited    = "Excited · Adventurous · Fun · Escapist"
	MoodReflective = "Reflective · Introspective · Contemplative About Life"
	MoodCalm       = "Calm · Peaceful · Relaxed · Soft · Gentle"
	MoodCurious    = "Curious · Engaged · Intrigued · Mentally Active"
	MoodIntense    = "Intense · Emotional · Cathartic · Bittersweet"
	MoodLonely     = "Lonely · Isolated · Unseen · Longing"
	MoodAngry      = "Angry · Frustrated · Irritated · Stressed"
	MoodHopeless   = "Hopeless · Sad · Heartbroken · Melancholy"
	MoodScared     = "Scared · Anxious · Uneasy · Tense · Nervous"
)

// PreferenceCongruence keeps the user's current mood. Every other
// preference value shifts away from it.
const PreferenceCongruence = "congruence"

var canonicalMoods = [...]string{
	MoodLove,
	MoodHappy,
	MoodHopeful,
	MoodExcited,
	MoodReflective,
	MoodCalm,
	MoodCurious,
	MoodIntense,
	MoodLonely,
	MoodAngry,
	MoodHopeless,
	MoodScared,
}

var repairTable = map[string][3]string{
	MoodIntense:  {MoodHappy, MoodHopeful, MoodCalm},
	MoodLonely:   {MoodLove, MoodHopeful, MoodExcited},
	MoodAngry:    {MoodCalm, MoodHappy, MoodReflective},
	MoodHopeless: {MoodHopeful, MoodHappy, MoodLove},
	MoodScared:   {MoodCalm, MoodHopeful, MoodHappy},
}

// CanonicalMoods returns the twelve moods seeded at startup.
func CanonicalMoods() []string {
	out := make([]string, len(canonicalMoods))
	copy(out, canonicalMoods[:])
	return out
}

// RepairTargets returns the moods that replace mood when the user wants to
// shift away from it. Moods without a repair entry map to themselves.
func RepairTargets(mood string) []string {
	targets, ok := repairTable[mood]
	if !ok {
		return []string{mood}
	}
	return targets[:]
}

func IsCongruence(preference string) bool {
	return preference == PreferenceCongruence
}

// TargetMoods derives the mood names to match movies against.
// Under congruence the selection is returned as given. Otherwise each mood
// is expanded through the repair table and duplicates are dropped,
// keeping first-seen order.
func TargetMoods(selected []string, preference string) []string {
	if IsCongruence(preference) {
		out := make([]string, len(selected))
		copy(out, selected)
		return out
	}

	seen := make(map[string]struct{}, len(selected)*3)
	targets := make([]string, 0, len(selected)*3)
	for _, mood := range selected {
		for _, target := range RepairTargets(mood) {
			if _, dup := seen[target]; dup {
				continue
			}
			seen[target] = struct{}{}
			targets = append(targets, target)
		}
	}
	return targets
}

// ShortName returns the first synonym of a composite mood name.
func ShortName(mood string) string {
	if i := strings.Index(mood, " · "); i >= 0 {
		return mood[:i]
	}
	return mood
}
