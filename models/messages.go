package models

// Message is a single immutable chat message. SortKey embeds the
// zero-padded millisecond timestamp and the message id, so DynamoDB's
// native sort order is already the (timestamp, messageId) total order.
type Message struct {
	ChannelID string `dynamodbav:"channelId" json:"channelId"` // ✅ Partition Key
	SortKey   string `dynamodbav:"sortKey" json:"-"`           // ✅ Sort Key: "<millis>#<messageId>"
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Content   string `dynamodbav:"content" json:"content"`
	Timestamp int64  `dynamodbav:"timestamp" json:"timestamp"` // Milliseconds since epoch, server-assigned
	IsUnread  bool   `dynamodbav:"isUnread" json:"isUnread"`
}

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
