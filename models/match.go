package models

// MatchResult combines a candidate profile with the skill overlap that
// produced the match. Derived on every request, never persisted.
type MatchResult struct {
	Profile                 UserProfile `json:"profile"`
	MatchingSkillsTheyTeach []string    `json:"matchingSkillsTheyTeach"` // They teach, viewer wants to learn
	MatchingSkillsTheyLearn []string    `json:"matchingSkillsTheyLearn"` // They want to learn, viewer teaches
	Score                   int         `json:"score"`                   // Combined overlap count, always > 0
}
