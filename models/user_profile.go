package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID            string   `dynamodbav:"userId" json:"userId"`                                           // ✅ Partition Key
	EmailID           string   `dynamodbav:"emailId,omitempty" json:"emailId,omitempty"`                     // Indexed via GSI
	Name              string   `dynamodbav:"name,omitempty" json:"name,omitempty"`                           // Full name of the user
	Education         string   `dynamodbav:"education,omitempty" json:"education,omitempty"`                 // Program or education background
	Bio               string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`                             // Short biography
	Location          string   `dynamodbav:"location,omitempty" json:"location,omitempty"`                   // Free-text location
	SkillsToTeach     []string `dynamodbav:"skillsToTeach,omitempty" json:"skillsToTeach,omitempty"`         // Skills the user can teach
	SkillsToLearn     []string `dynamodbav:"skillsToLearn,omitempty" json:"skillsToLearn,omitempty"`         // Skills the user wants to learn
	ProfilePictureURL string   `dynamodbav:"profilePictureUrl,omitempty" json:"profilePictureUrl,omitempty"` // S3 object key or URL
	CreatedAt         string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`                 // Timestamp of creation
}

// UserProfilesTable is the DynamoDB table name for user profiles
const UserProfilesTable = "UserProfiles"

// EmailIndex is the GSI for looking up profiles by email
const EmailIndex = "emailId-index"
