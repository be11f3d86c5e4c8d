package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type challengeTemplate struct {
	name     string
	desc     string
	xp       int
	boosts   map[string]int
	interval Difficulty
}

var weeklyTemplates = []challengeTemplate{
	{"Fitness Week", "Complete 5 fitness-related tasks", 100, map[string]int{"STRENGTH": 5, "VITALITY": 5}, DifficultyWeekly},
	{"Learning Sprint", "Study for 7 hours total", 120, map[string]int{"LOGIC": 6, "WISDOM": 4}, DifficultyWeekly},
	{"Creative Burst", "Work on creative projects daily", 110, map[string]int{"CREATIVITY": 7, "CHARISMA": 3}, DifficultyWeekly},
	{"Social Challenge", "Connect with 3 new people", 90, map[string]int{"CHARISMA": 6, "CLARITY": 4}, DifficultyWeekly},
	{"Skill Builder", "Practice a skill for 5 days", 100, map[string]int{"AGILITY": 4, "LOGIC": 6}, DifficultyWeekly},
}

var monthlyTemplates = []challengeTemplate{
	{"Master Quest", "Complete 50 quests this month", 300, map[string]int{"STRENGTH": 10, "VITALITY": 10}, DifficultyMonthly},
	{"Knowledge Seeker", "Read 4 books or courses", 350, map[string]int{"LOGIC": 15, "WISDOM": 10}, DifficultyMonthly},
	{"Creative Mastery", "Finish a major creative project", 320, map[string]int{"CREATIVITY": 15, "CHARISMA": 8}, DifficultyMonthly},
	{"Leadership Journey", "Lead 3 group activities", 280, map[string]int{"CHARISMA": 12, "CLARITY": 10}, DifficultyMonthly},
	{"Peak Performance", "Achieve personal best in fitness", 300, map[string]int{"STRENGTH": 12, "AGILITY": 12}, DifficultyMonthly},
}

func (s *Service) rollTemplate(pool []challengeTemplate) *Quest {
	t := pool[s.rng.Intn(len(pool))]
	boosts := make(map[string]int, len(t.boosts))
	for k, v := range t.boosts {
		boosts[k] = v
	}
	return &Quest{
		ID:          uuid.NewString(),
		Name:        t.name,
		Description: t.desc,
		XPReward:    t.xp,
		StatBoosts:  boosts,
		Day:         ChallengeLane,
		Difficulty:  t.interval,
		CreatedAt:   s.now(),
	}
}

// GenerateWeekly rolls a fresh weekly challenge from the template pool,
// replacing the current one regardless of its completion state.
func (s *Service) GenerateWeekly(ctx context.Context) (*Quest, error) {
	q := s.rollTemplate(weeklyTemplates)
	s.state.WeeklyChallenge = q
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.log.WithField("challenge", q.Name).Info("weekly challenge rolled")
	return q, nil
}

// GenerateMonthly rolls a fresh monthly challenge from the template pool.
func (s *Service) GenerateMonthly(ctx context.Context) (*Quest, error) {
	q := s.rollTemplate(monthlyTemplates)
	s.state.MonthlyChallenge = q
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.log.WithField("challenge", q.Name).Info("monthly challenge rolled")
	return q, nil
}

// Challenges returns the active weekly and monthly slots followed by all
// custom challenges.
func (s *Service) Challenges() []*Quest {
	return s.state.Challenges()
}

// CreateChallenge adds a custom challenge. The difficulty must be Weekly
// or Monthly; the day lane is fixed.
func (s *Service) CreateChallenge(ctx context.Context, in QuestInput) (*Quest, error) {
	if in.Difficulty == "" {
		in.Difficulty = DifficultyWeekly
	}
	if err := s.validateQuestInput(&in); err != nil {
		return nil, err
	}
	if !in.Difficulty.IsChallengeOnly() {
		return nil, ValidationError{Reason: "challenge difficulty must be Weekly or Monthly"}
	}

	q := &Quest{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		XPReward:    in.XPReward,
		StatBoosts:  in.StatBoosts,
		Day:         ChallengeLane,
		Difficulty:  in.Difficulty,
		CreatedAt:   s.now(),
	}
	s.state.CustomChallenges = append(s.state.CustomChallenges, q)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return q, nil
}

// UpdateChallenge edits a custom challenge. The generated weekly/monthly
// slots are rerolled, not edited.
func (s *Service) UpdateChallenge(ctx context.Context, id string, in QuestInput) (*Quest, error) {
	var q *Quest
	for _, c := range s.state.CustomChallenges {
		if c.ID == id {
			q = c
			break
		}
	}
	if q == nil {
		return nil, NotFoundError{Kind: "challenge", ID: id}
	}
	if in.Difficulty == "" {
		in.Difficulty = q.Difficulty
	}
	if err := s.validateQuestInput(&in); err != nil {
		return nil, err
	}
	if !in.Difficulty.IsChallengeOnly() {
		return nil, ValidationError{Reason: "challenge difficulty must be Weekly or Monthly"}
	}

	q.Name = in.Name
	q.Description = strings.TrimSpace(in.Description)
	q.XPReward = in.XPReward
	q.StatBoosts = in.StatBoosts
	q.Difficulty = in.Difficulty
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return q, nil
}

// DeleteChallenge removes a custom challenge by id.
func (s *Service) DeleteChallenge(ctx context.Context, id string) error {
	for i, c := range s.state.CustomChallenges {
		if c.ID == id {
			s.state.CustomChallenges = append(s.state.CustomChallenges[:i], s.state.CustomChallenges[i+1:]...)
			return s.persist(ctx)
		}
	}
	return NotFoundError{Kind: "challenge", ID: id}
}
