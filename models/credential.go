package models

// Credential stores the sign-in record for a registered email address.
// Kept separate from UserProfile so profile reads never carry the hash.
type Credential struct {
	EmailID      string `dynamodbav:"emailId" json:"emailId"` // ✅ Partition Key
	UserID       string `dynamodbav:"userId" json:"userId"`   // Owning profile id
	PasswordHash string `dynamodbav:"passwordHash" json:"-"`  // bcrypt hash, never serialized
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
}

// CredentialsTable is the DynamoDB table name for sign-in credentials
const CredentialsTable = "Credentials"
