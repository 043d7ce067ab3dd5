package state

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Booking flow stages. A session only ever moves forward through these,
// except for an explicit restart.
const (
	StageInitial           = "initial"
	StageLangSelected      = "lang_selected"
	StageCollectingName    = "collecting_name"
	StageCollectingSurname = "collecting_surname"
	StageCollectingPhone   = "collecting_phone"
	StageSlotOffered       = "slot_offered"
	StageDone              = "done"
)

// Collected answer keys.
const (
	AnswerName    = "name"
	AnswerSurname = "surname"
	AnswerPhone   = "phone"
)

// PendingOffer records the slots shown to a user so a later slot
// callback can be checked against what was actually offered.
type PendingOffer struct {
	EventType string   `json:"event_type"`
	Slots     []string `json:"slots"`
}

// Contains reports whether slot was part of the offer.
func (o *PendingOffer) Contains(slot string) bool {
	if o == nil {
		return false
	}
	for _, s := range o.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// Session is the per-user conversation record. Answers and PendingOffer
// live on the struct; the raw columns hold their JSON form for storage.
type Session struct {
	UserID   int64  `gorm:"primaryKey;column:user_id"`
	Language string `gorm:"column:language"`
	Stage    string `gorm:"column:stage"`

	Answers      map[string]string `gorm:"-"`
	PendingOffer *PendingOffer     `gorm:"-"`

	AnswersRaw string `gorm:"column:answers"`
	OfferRaw   string `gorm:"column:pending_offer"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Session) TableName() string {
	return "sessions"
}

// NewSession returns a fresh session at the initial stage.
func NewSession(userID int64) *Session {
	now := time.Now().UTC()
	return &Session{
		UserID:    userID,
		Stage:     StageInitial,
		Answers:   make(map[string]string),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Restart resets the flow while keeping the chosen language, so a
// returning user is not forced to re-pick it.
func (s *Session) Restart() {
	s.Stage = StageInitial
	s.Answers = make(map[string]string)
	s.PendingOffer = nil
}

// SetAnswer stores one collected field.
func (s *Session) SetAnswer(key, value string) {
	if s.Answers == nil {
		s.Answers = make(map[string]string)
	}
	s.Answers[key] = value
}

// Answer returns a collected field or "".
func (s *Session) Answer(key string) string {
	return s.Answers[key]
}

// Clone returns a deep copy, used by the memory backend so callers
// never share map references with stored state.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Answers = make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		out.Answers[k] = v
	}
	if s.PendingOffer != nil {
		offer := PendingOffer{
			EventType: s.PendingOffer.EventType,
			Slots:     append([]string(nil), s.PendingOffer.Slots...),
		}
		out.PendingOffer = &offer
	}
	return &out
}

// BeforeSave serializes the map fields into their storage columns.
func (s *Session) BeforeSave(*gorm.DB) error {
	return s.encode()
}

// AfterFind restores the map fields from their storage columns.
func (s *Session) AfterFind(*gorm.DB) error {
	return s.decode()
}

func (s *Session) encode() error {
	if s.Answers == nil {
		s.Answers = make(map[string]string)
	}
	rawAnswers, err := json.Marshal(s.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers for user %d: %w", s.UserID, err)
	}
	s.AnswersRaw = string(rawAnswers)

	if s.PendingOffer == nil {
		s.OfferRaw = ""
		return nil
	}
	rawOffer, err := json.Marshal(s.PendingOffer)
	if err != nil {
		return fmt.Errorf("failed to encode pending offer for user %d: %w", s.UserID, err)
	}
	s.OfferRaw = string(rawOffer)
	return nil
}

func (s *Session) decode() error {
	s.Answers = make(map[string]string)
	if s.AnswersRaw != "" {
		if err := json.Unmarshal([]byte(s.AnswersRaw), &s.Answers); err != nil {
			return fmt.Errorf("failed to decode answers for user %d: %w", s.UserID, err)
		}
	}

	s.PendingOffer = nil
	if s.OfferRaw != "" {
		var offer PendingOffer
		if err := json.Unmarshal([]byte(s.OfferRaw), &offer); err != nil {
			return fmt.Errorf("failed to decode pending offer for user %d: %w", s.UserID, err)
		}
		s.PendingOffer = &offer
	}
	return nil
}
