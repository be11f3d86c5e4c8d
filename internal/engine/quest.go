package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// QuestInput carries the editable fields of a quest or challenge.
type QuestInput struct {
	Name        string
	Description string
	XPReward    int
	StatBoosts  map[string]int
	Day         string
	Difficulty  Difficulty
}

func (s *Service) validateQuestInput(in *QuestInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ValidationError{Reason: "quest name is required"}
	}
	if in.XPReward < 0 {
		return ValidationError{Reason: "xp reward cannot be negative"}
	}
	if !in.Difficulty.IsValid() {
		in.Difficulty = DefaultDifficulty
	}
	for stat := range in.StatBoosts {
		if _, ok := s.state.Stats[stat]; !ok {
			return ValidationError{Reason: "unknown stat " + stat}
		}
		if in.StatBoosts[stat] <= 0 {
			return ValidationError{Reason: "stat boost for " + stat + " must be positive"}
		}
	}
	return nil
}

// CreateQuest adds a weekday quest to the registry.
func (s *Service) CreateQuest(ctx context.Context, in QuestInput) (*Quest, error) {
	if err := s.validateQuestInput(&in); err != nil {
		return nil, err
	}
	if !IsWeekday(in.Day) {
		return nil, ValidationError{Reason: "invalid day " + in.Day}
	}
	if in.Difficulty.IsChallengeOnly() {
		return nil, ValidationError{Reason: "weekly and monthly difficulties are reserved for challenges"}
	}

	q := &Quest{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		XPReward:    in.XPReward,
		StatBoosts:  in.StatBoosts,
		Day:         in.Day,
		Difficulty:  in.Difficulty,
		CreatedAt:   s.now(),
	}
	s.state.Quests = append(s.state.Quests, q)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return q, nil
}

// UpdateQuest edits a weekday quest. Weekly/monthly challenges cannot be
// edited here; the challenge operations own them.
func (s *Service) UpdateQuest(ctx context.Context, id string, in QuestInput) (*Quest, error) {
	q := s.findWeekdayQuest(id)
	if q == nil {
		return nil, NotFoundError{Kind: "quest", ID: id}
	}
	if q.Difficulty.IsChallengeOnly() {
		return nil, ValidationError{Reason: "challenges cannot be edited as quests"}
	}
	if err := s.validateQuestInput(&in); err != nil {
		return nil, err
	}
	if !IsWeekday(in.Day) {
		return nil, ValidationError{Reason: "invalid day " + in.Day}
	}
	if in.Difficulty.IsChallengeOnly() {
		return nil, ValidationError{Reason: "weekly and monthly difficulties are reserved for challenges"}
	}

	q.Name = in.Name
	q.Description = strings.TrimSpace(in.Description)
	q.XPReward = in.XPReward
	q.StatBoosts = in.StatBoosts
	q.Day = in.Day
	q.Difficulty = in.Difficulty
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return q, nil
}

// DeleteQuest removes a weekday quest from the registry.
func (s *Service) DeleteQuest(ctx context.Context, id string) error {
	for i, q := range s.state.Quests {
		if q.ID == id {
			s.state.Quests = append(s.state.Quests[:i], s.state.Quests[i+1:]...)
			return s.persist(ctx)
		}
	}
	return NotFoundError{Kind: "quest", ID: id}
}

func (s *Service) findWeekdayQuest(id string) *Quest {
	for _, q := range s.state.Quests {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// Quest resolves an id to a quest or challenge for rendering.
func (s *Service) Quest(id string) (*Quest, bool) {
	q := s.findQuest(id)
	return q, q != nil
}

// findQuest resolves an id across the weekday registry, the
// weekly/monthly slots and the custom challenges.
func (s *Service) findQuest(id string) *Quest {
	if q := s.findWeekdayQuest(id); q != nil {
		return q
	}
	if q := s.state.WeeklyChallenge; q != nil && q.ID == id {
		return q
	}
	if q := s.state.MonthlyChallenge; q != nil && q.ID == id {
		return q
	}
	for _, q := range s.state.CustomChallenges {
		if q.ID == id {
			return q
		}
	}
	return nil
}
