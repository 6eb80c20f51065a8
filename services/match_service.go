package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"sprout_server/models"
)

// MatchService ranks other users by skill overlap with a viewer.
type MatchService struct {
	Profiles *UserProfileService
}

// ComputeMatches scores every candidate against the viewer and returns the
// ranked list. Pure: no I/O, deterministic for a given candidate order.
//
// A candidate matches when at least one of their teachable skills appears in
// the viewer's learn list, or one of their learn skills appears in the
// viewer's teach list. Skills compare by exact string equality; duplicate
// entries inside a list count once. Results are ordered by descending score,
// ties keeping candidate input order.
func ComputeMatches(viewer models.UserProfile, candidates []models.UserProfile) []models.MatchResult {
	wantToLearn := toSkillSet(viewer.SkillsToLearn)
	canTeach := toSkillSet(viewer.SkillsToTeach)

	results := []models.MatchResult{}
	if len(wantToLearn) == 0 && len(canTeach) == 0 {
		return results
	}

	for _, candidate := range candidates {
		if candidate.UserID == viewer.UserID {
			continue
		}

		theyTeach := intersectSkills(candidate.SkillsToTeach, wantToLearn)
		theyLearn := intersectSkills(candidate.SkillsToLearn, canTeach)
		score := len(theyTeach) + len(theyLearn)
		if score == 0 {
			continue
		}

		results = append(results, models.MatchResult{
			Profile:                 candidate,
			MatchingSkillsTheyTeach: theyTeach,
			MatchingSkillsTheyLearn: theyLearn,
			Score:                   score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// GroupByRequestedSkill buckets ranked matches under each skill the viewer
// wants to learn that the candidate can teach. Buckets preserve the ranked
// order; skills nobody teaches get no bucket.
func GroupByRequestedSkill(viewer models.UserProfile, matches []models.MatchResult) map[string][]models.MatchResult {
	grouped := make(map[string][]models.MatchResult)
	for _, skill := range viewer.SkillsToLearn {
		if _, seen := grouped[skill]; seen {
			continue
		}
		for _, match := range matches {
			for _, taught := range match.MatchingSkillsTheyTeach {
				if taught == skill {
					grouped[skill] = append(grouped[skill], match)
					break
				}
			}
		}
		if len(grouped[skill]) == 0 {
			delete(grouped, skill)
		}
	}
	return grouped
}

// GetMatchesForUser loads the viewer and all other profiles, then runs the matcher
func (ms *MatchService) GetMatchesForUser(ctx context.Context, userID string) ([]models.MatchResult, error) {
	viewer, err := ms.Profiles.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch viewer profile: %w", err)
	}

	candidates, err := ms.Profiles.GetCandidateProfiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	matches := ComputeMatches(*viewer, candidates)
	log.Printf("🔍 %d of %d candidates matched for user %s", len(matches), len(candidates), userID)
	return matches, nil
}

// GetMatchesBySkill returns the same ranked matches bucketed per requested skill
func (ms *MatchService) GetMatchesBySkill(ctx context.Context, userID string) (map[string][]models.MatchResult, error) {
	viewer, err := ms.Profiles.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch viewer profile: %w", err)
	}

	candidates, err := ms.Profiles.GetCandidateProfiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	matches := ComputeMatches(*viewer, candidates)
	return GroupByRequestedSkill(*viewer, matches), nil
}

func toSkillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		set[skill] = struct{}{}
	}
	return set
}

// intersectSkills keeps the candidate's display order and drops duplicates
func intersectSkills(skills []string, against map[string]struct{}) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, skill := range skills {
		if _, ok := against[skill]; !ok {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}
