package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"sprout_server/models"
	"sprout_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// channelSeparator joins the two sorted participant ids. User ids are xids,
// which never contain an underscore.
const channelSeparator = "_"

// ErrEmptyMessage rejects a publish whose text is empty after trimming.
var ErrEmptyMessage = errors.New("message text is empty")

// ChatService owns channel identity and the ordered message log
type ChatService struct {
	Dynamo *DynamoService
}

// ChannelID builds the canonical id for an unordered pair of users.
// ChannelID(a, b) == ChannelID(b, a), so both participants converge on the
// same log no matter who opens it.
func ChannelID(userA, userB string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	return userA + channelSeparator + userB
}

// IsParticipant reports whether userID is one of the channel's two members
func IsParticipant(channelID, userID string) bool {
	parts := strings.Split(channelID, channelSeparator)
	return len(parts) == 2 && (parts[0] == userID || parts[1] == userID)
}

// messageSortKey gives messages a total order of (timestamp, messageId).
// Thirteen digits of zero-padded milliseconds keep lexicographic order equal
// to numeric order.
func messageSortKey(timestamp int64, messageID string) string {
	return fmt.Sprintf("%013d#%s", timestamp, messageID)
}

// OpenChannel creates the channel record for the pair if absent. Idempotent:
// opening an existing channel succeeds and returns the same record shape.
func (s *ChatService) OpenChannel(ctx context.Context, userA, userB string) (*models.Channel, error) {
	first, second := userA, userB
	if second < first {
		first, second = second, first
	}

	channel := models.Channel{
		ChannelID:    ChannelID(userA, userB),
		Participants: []string{first, second},
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.Dynamo.PutItemIfAbsent(ctx, models.ChannelsTable, channel, "channelId")
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if created {
		log.Printf("✅ Opened channel %s", channel.ChannelID)
		return &channel, nil
	}

	// Already open: read back the stored record so the original createdAt
	// is returned, not the timestamp of this reopen attempt.
	key := map[string]types.AttributeValue{
		"channelId": &types.AttributeValueMemberS{Value: channel.ChannelID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.ChannelsTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel: %w", err)
	}

	var existing models.Channel
	if err := attributevalue.UnmarshalMap(item, &existing); err != nil {
		return nil, fmt.Errorf("failed to parse channel: %w", err)
	}
	return &existing, nil
}

// SendMessage validates and stores a new message, returning the stored record.
// The timestamp is assigned here so one clock orders the whole channel log.
func (s *ChatService) SendMessage(ctx context.Context, channelID, senderID, text string) (*models.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}

	now := time.Now().UnixMilli()
	message := models.Message{
		ChannelID: channelID,
		MessageID: uuid.New().String(),
		SenderID:  senderID,
		Content:   trimmed,
		Timestamp: now,
		IsUnread:  true,
	}
	message.SortKey = messageSortKey(message.Timestamp, message.MessageID)

	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		log.Printf("❌ Failed to store message for channel %s: %v", channelID, err)
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	return &message, nil
}

// GetMessages fetches the newest messages of a channel, returned ascending
// by timestamp with ties broken by message id. Querying newest-first keeps a
// just-published message visible even when the channel outgrows the limit;
// the sort restores chronological order for the caller.
func (s *ChatService) GetMessages(ctx context.Context, channelID string, limit int) ([]models.Message, error) {
	keyCondition := "#channelId = :channelId"
	expressionValues := map[string]types.AttributeValue{
		":channelId": &types.AttributeValueMemberS{Value: channelID},
	}
	expressionNames := map[string]string{
		"#channelId": "channelId",
	}

	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, int32(limit), true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}

	SortMessages(messages)
	return messages, nil
}

// SortMessages orders messages ascending by timestamp, ties broken by
// message id, so all subscribers resolve the same total order even for
// sends landing in the same millisecond.
func SortMessages(messages []models.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].Timestamp != messages[j].Timestamp {
			return messages[i].Timestamp < messages[j].Timestamp
		}
		return messages[i].MessageID < messages[j].MessageID
	})
}

// MarkMessagesAsRead flips isUnread on messages the reader received,
// walking every page of the channel log. Messages the reader sent are
// left alone.
func (s *ChatService) MarkMessagesAsRead(ctx context.Context, channelID, readerID string) (int, error) {
	keyCondition := "#channelId = :channelId"
	expressionValues := map[string]types.AttributeValue{
		":channelId": &types.AttributeValueMemberS{Value: channelID},
	}
	expressionNames := map[string]string{
		"#channelId": "channelId",
	}

	updated := 0
	var startKey map[string]types.AttributeValue
	for {
		items, lastKey, err := s.Dynamo.QueryItemsPaged(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, 100, startKey)
		if err != nil {
			return updated, fmt.Errorf("failed to fetch messages: %w", err)
		}

		for _, item := range items {
			if utils.ExtractString(item, "senderId") == readerID {
				continue
			}
			if !utils.ExtractBool(item, "isUnread") {
				continue
			}

			key := map[string]types.AttributeValue{
				"channelId": &types.AttributeValueMemberS{Value: channelID},
				"sortKey":   &types.AttributeValueMemberS{Value: utils.ExtractString(item, "sortKey")},
			}
			updateExpression := "SET isUnread = :false"
			updateValues := map[string]types.AttributeValue{
				":false": &types.AttributeValueMemberBOOL{Value: false},
			}

			if _, err := s.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression, key, updateValues, nil); err != nil {
				log.Printf("❌ Failed to mark message %s as read: %v", utils.ExtractString(item, "messageId"), err)
				continue
			}
			updated++
		}

		if lastKey == nil {
			break
		}
		startKey = lastKey
	}

	log.Printf("✅ Marked %d messages as read in channel %s for %s", updated, channelID, readerID)
	return updated, nil
}
