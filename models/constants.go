package models

// ✅ Profile field limits enforced before any write
const (
	MaxSkillsPerList = 25
	MaxBioLength     = 500
	MaxSkillLength   = 80
)

// ✅ Minimum password length accepted at signup
const MinPasswordLength = 8
