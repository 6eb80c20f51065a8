package services

import (
	"testing"

	"sprout_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile(id string, teach, learn []string) models.UserProfile {
	return models.UserProfile{
		UserID:        id,
		Name:          "User " + id,
		SkillsToTeach: teach,
		SkillsToLearn: learn,
	}
}

func TestComputeMatches_NeverIncludesViewer(t *testing.T) {
	viewer := profile("viewer", []string{"Yoga"}, []string{"Excel"})
	candidates := []models.UserProfile{
		viewer, // full collection includes the viewer
		profile("other", []string{"Excel"}, []string{"Yoga"}),
	}

	matches := ComputeMatches(viewer, candidates)

	require.Len(t, matches, 1)
	for _, m := range matches {
		assert.NotEqual(t, viewer.UserID, m.Profile.UserID)
	}
}

func TestComputeMatches_EveryResultHasPositiveScore(t *testing.T) {
	viewer := profile("viewer", []string{"Go"}, []string{"Photography", "Guitar"})
	candidates := []models.UserProfile{
		profile("a", []string{"Photography"}, nil),
		profile("b", []string{"Cooking"}, []string{"Knitting"}), // no overlap
		profile("c", nil, []string{"Go"}),
	}

	matches := ComputeMatches(viewer, candidates)

	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.Greater(t, m.Score, 0)
		assert.Equal(t, m.Score, len(m.MatchingSkillsTheyTeach)+len(m.MatchingSkillsTheyLearn))
	}
}

func TestComputeMatches_SingleSkillOverlap(t *testing.T) {
	viewer := profile("viewer", nil, []string{"Photography"})
	candidate := profile("candidate", []string{"Photography", "Guitar"}, nil)

	matches := ComputeMatches(viewer, []models.UserProfile{candidate})

	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Score)
	assert.Equal(t, []string{"Photography"}, matches[0].MatchingSkillsTheyTeach)
	assert.Empty(t, matches[0].MatchingSkillsTheyLearn)
}

func TestComputeMatches_ReciprocalSkillsScoreBothWays(t *testing.T) {
	a := profile("a", []string{"Yoga"}, []string{"Excel"})
	b := profile("b", []string{"Excel"}, []string{"Yoga"})

	aMatches := ComputeMatches(a, []models.UserProfile{b})
	bMatches := ComputeMatches(b, []models.UserProfile{a})

	require.Len(t, aMatches, 1)
	require.Len(t, bMatches, 1)
	assert.Equal(t, 2, aMatches[0].Score)
	assert.Equal(t, 2, bMatches[0].Score)
	assert.Equal(t, []string{"Excel"}, aMatches[0].MatchingSkillsTheyTeach)
	assert.Equal(t, []string{"Yoga"}, aMatches[0].MatchingSkillsTheyLearn)
}

func TestComputeMatches_RankedByScoreDescending(t *testing.T) {
	viewer := profile("viewer", []string{"Go", "SQL"}, []string{"Photography", "Guitar", "Yoga"})
	candidates := []models.UserProfile{
		profile("low", []string{"Yoga"}, nil),
		profile("high", []string{"Photography", "Guitar"}, []string{"Go", "SQL"}),
		profile("mid", []string{"Photography"}, []string{"Go"}),
	}

	matches := ComputeMatches(viewer, candidates)

	require.Len(t, matches, 3)
	assert.Equal(t, "high", matches[0].Profile.UserID)
	assert.Equal(t, "mid", matches[1].Profile.UserID)
	assert.Equal(t, "low", matches[2].Profile.UserID)
}

func TestComputeMatches_TiesKeepInputOrder(t *testing.T) {
	viewer := profile("viewer", nil, []string{"Go"})
	candidates := []models.UserProfile{
		profile("first", []string{"Go"}, nil),
		profile("second", []string{"Go"}, nil),
		profile("third", []string{"Go"}, nil),
	}

	matches := ComputeMatches(viewer, candidates)

	require.Len(t, matches, 3)
	assert.Equal(t, "first", matches[0].Profile.UserID)
	assert.Equal(t, "second", matches[1].Profile.UserID)
	assert.Equal(t, "third", matches[2].Profile.UserID)
}

func TestComputeMatches_DeterministicForIdenticalInput(t *testing.T) {
	viewer := profile("viewer", []string{"Go", "SQL"}, []string{"Photography", "Guitar"})
	candidates := []models.UserProfile{
		profile("a", []string{"Photography"}, []string{"Go"}),
		profile("b", []string{"Guitar"}, []string{"SQL"}),
		profile("c", []string{"Photography", "Guitar"}, nil),
	}

	first := ComputeMatches(viewer, candidates)
	second := ComputeMatches(viewer, candidates)

	assert.Equal(t, first, second)
}

func TestComputeMatches_DuplicateSkillsCountOnce(t *testing.T) {
	viewer := profile("viewer", nil, []string{"Go", "Go"})
	candidate := profile("candidate", []string{"Go", "Go", "Go"}, nil)

	matches := ComputeMatches(viewer, []models.UserProfile{candidate})

	require.Len(t, matches, 1)
	assert.Equal(t, 1, matches[0].Score)
	assert.Equal(t, []string{"Go"}, matches[0].MatchingSkillsTheyTeach)
}

func TestComputeMatches_SkillsCompareCaseSensitive(t *testing.T) {
	viewer := profile("viewer", nil, []string{"photography"})
	candidate := profile("candidate", []string{"Photography"}, nil)

	matches := ComputeMatches(viewer, []models.UserProfile{candidate})

	assert.Empty(t, matches)
}

func TestComputeMatches_EmptyInputs(t *testing.T) {
	withSkills := profile("viewer", []string{"Go"}, []string{"SQL"})
	assert.Empty(t, ComputeMatches(withSkills, nil))

	noSkills := profile("viewer", nil, nil)
	candidates := []models.UserProfile{profile("a", []string{"Go"}, []string{"SQL"})}
	assert.Empty(t, ComputeMatches(noSkills, candidates))
}

func TestGroupByRequestedSkill_BucketsKeepRankedOrder(t *testing.T) {
	viewer := profile("viewer", nil, []string{"Photography", "Guitar", "Welding"})
	candidates := []models.UserProfile{
		profile("solo", []string{"Guitar"}, nil),
		profile("both", []string{"Photography", "Guitar"}, nil),
		profile("photo", []string{"Photography"}, nil),
	}

	matches := ComputeMatches(viewer, candidates)
	grouped := GroupByRequestedSkill(viewer, matches)

	require.Len(t, grouped, 2)
	assert.NotContains(t, grouped, "Welding") // nobody teaches it

	photoBucket := grouped["Photography"]
	require.Len(t, photoBucket, 2)
	assert.Equal(t, "both", photoBucket[0].Profile.UserID) // score 2 ranks first
	assert.Equal(t, "photo", photoBucket[1].Profile.UserID)

	guitarBucket := grouped["Guitar"]
	require.Len(t, guitarBucket, 2)
	assert.Equal(t, "both", guitarBucket[0].Profile.UserID)
	assert.Equal(t, "solo", guitarBucket[1].Profile.UserID)
}
