package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pko841923-dot/Level-System/internal/storage"
)

const (
	stateKey         = "character_state"
	midnightResetKey = "last_midnight_reset"
)

// Service owns the character state and applies every engine operation to
// it. It is single-threaded: callers must not invoke operations
// concurrently or reentrantly.
type Service struct {
	docs  *storage.DocumentRepo
	state *CharacterState

	notifier Notifier
	log      logrus.FieldLogger
	now      func() time.Time
	rng      *rand.Rand
}

type Option func(*Service)

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Service) { s.log = l }
}

// WithClock overrides the time source (tests drive streak days with it).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = r }
}

// NewService loads the character state from the store, falling back to
// the default template when the document is absent or malformed. A
// malformed document is removed so the next save starts clean; load
// failure is never fatal.
func NewService(ctx context.Context, docs *storage.DocumentRepo, opts ...Option) (*Service, error) {
	s := &Service{
		docs:     docs,
		notifier: NopNotifier{},
		log:      logrus.StandardLogger(),
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}

	raw, ok, err := docs.Get(ctx, stateKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.state = DefaultState()
		return s, nil
	}

	var st CharacterState
	if err := json.Unmarshal(raw, &st); err != nil {
		s.log.WithError(err).Warn("character state is malformed, starting fresh")
		_ = docs.Remove(ctx, stateKey)
		s.state = DefaultState()
		return s, nil
	}
	st.normalize()
	s.state = &st
	return s, nil
}

// State exposes the aggregate for read-only rendering queries. Callers
// must not mutate it; every mutation goes through an engine operation.
func (s *Service) State() *CharacterState {
	return s.state
}

func (s *Service) persist(ctx context.Context) error {
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	return s.docs.Set(ctx, stateKey, raw)
}

// Save persists the current state. The autosave sweep calls this.
func (s *Service) Save(ctx context.Context) error {
	return s.persist(ctx)
}

// Reset discards all persisted state and recreates the default template.
// There is no undo.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.docs.Remove(ctx, stateKey); err != nil {
		return err
	}
	if err := s.docs.Remove(ctx, midnightResetKey); err != nil {
		return err
	}
	s.state = DefaultState()
	s.log.Warn("character state reset to defaults")
	return nil
}

// RenameCharacter sets the display name.
func (s *Service) RenameCharacter(ctx context.Context, name string) error {
	if name == "" {
		return ValidationError{Reason: "character name is required"}
	}
	s.state.CharacterName = name
	return s.persist(ctx)
}

// MidnightReset clears the completed flag on every weekday quest once per
// calendar day. Challenge completions are kept. The sweep is idempotent:
// a second run on the same date is a no-op. Returns how many quests were
// reopened.
func (s *Service) MidnightReset(ctx context.Context) (int, error) {
	today := s.now().Format(dateLayout)
	raw, ok, err := s.docs.Get(ctx, midnightResetKey)
	if err != nil {
		return 0, err
	}
	if ok && string(raw) == today {
		return 0, nil
	}

	reset := 0
	for _, q := range s.state.Quests {
		if q.Completed {
			q.Completed = false
			q.CompletedAt = nil
			reset++
		}
	}
	if err := s.docs.Set(ctx, midnightResetKey, []byte(today)); err != nil {
		return 0, err
	}
	if err := s.persist(ctx); err != nil {
		return 0, err
	}
	if reset > 0 {
		s.log.WithFields(logrus.Fields{"date": today, "reopened": reset}).Info("midnight reset")
	}
	return reset, nil
}

// Today returns the current weekday name in the Monday-first cycle.
func (s *Service) Today() string {
	wd := int(s.now().Weekday())
	if wd == 0 {
		wd = 7
	}
	return Weekdays[wd-1]
}
