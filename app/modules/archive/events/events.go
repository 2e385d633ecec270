package archiveevents

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// Archive event topics.
const (
	// RoundArchivedV1 is published after a round is written to the archive.
	RoundArchivedV1 = "scorecard.round.archived.v1"
	// RoundDeletedV1 is published after a round is removed from the archive.
	RoundDeletedV1 = "scorecard.round.deleted.v1"
)

// RoundArchivedPayloadV1 describes a newly archived round.
type RoundArchivedPayloadV1 struct {
	RoundID     string    `json:"round_id"`
	Date        time.Time `json:"date"`
	Players     []string  `json:"players"`
	HoleCount   int       `json:"hole_count"`
	ArchiveSize int       `json:"archive_size"`
}

// RoundDeletedPayloadV1 describes a removed round.
type RoundDeletedPayloadV1 struct {
	RoundID     string `json:"round_id"`
	Index       int    `json:"index"`
	ArchiveSize int    `json:"archive_size"`
}

// NewMessage encodes payload as a watermill message tagged with the topic and correlation id.
// An empty correlationID gets a fresh one.
func NewMessage(topic, correlationID string, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}
	if correlationID == "" {
		correlationID = watermill.NewUUID()
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("topic", topic)
	middleware.SetCorrelationID(correlationID, msg)
	return msg, nil
}

// Decode unmarshals a message payload into T.
func Decode[T any](msg *message.Message) (*T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return &payload, nil
}
