package models

// Channel is the shared two-party message log record. The channelId is
// canonical for the unordered participant pair, so both users converge on
// the same log no matter who opens it first.
type Channel struct {
	ChannelID    string   `dynamodbav:"channelId" json:"channelId"` // ✅ Partition Key
	Participants []string `dynamodbav:"participants" json:"participants"`
	CreatedAt    string   `dynamodbav:"createdAt" json:"createdAt"`
}

// ChannelsTable is the DynamoDB table name for chat channels
const ChannelsTable = "Channels"
