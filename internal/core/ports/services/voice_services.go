package services

import (
	"context"

	"github.com/khatasync/khata_backend/internal/core/domain"
	"github.com/khatasync/khata_backend/internal/dto"
)

// IntentParser turns a transcribed phrase into a structured intent. The
// built-in implementation is keyword/regex based and offline.
type IntentParser interface {
	Parse(text string) (*domain.VoiceIntent, error)
}

// VoiceSvcFacade wires parsed intents into the synced create paths.
type VoiceSvcFacade interface {
	// ParseIntent parses without recording anything.
	ParseIntent(ctx context.Context, text string) (*domain.VoiceIntent, error)

	// RecordFromVoice parses the phrase and records either a customer
	// transaction (resolving the party by name) or an expense.
	RecordFromVoice(ctx context.Context, req dto.VoiceRecordRequest, creatorUserID string) (*dto.VoiceRecordResponse, error)
}
