package engine

import (
	"context"
	"math"
	"sort"

	"github.com/sirupsen/logrus"
)

const skillCostGrowth = 1.5

// SkillView is a named skill snapshot for rendering.
type SkillView struct {
	Name string
	Skill
}

// Skills lists skills sorted by name.
func (s *Service) Skills() []SkillView {
	out := make([]SkillView, 0, len(s.state.Skills))
	for name, sk := range s.state.Skills {
		out = append(out, SkillView{Name: name, Skill: *sk})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// UpgradeSkill spends skill points to raise a skill one level. When the
// skill is maxed or the points do not cover the cost it reports false
// without touching state. Unknown names are an error.
func (s *Service) UpgradeSkill(ctx context.Context, name string) (bool, error) {
	sk, ok := s.state.Skills[name]
	if !ok {
		return false, NotFoundError{Kind: "skill", ID: name}
	}
	if sk.Level >= sk.Max || s.state.SkillPoints < sk.Cost {
		return false, nil
	}

	s.state.SkillPoints -= sk.Cost
	sk.Level++
	sk.Cost = int(math.Floor(float64(sk.Cost) * skillCostGrowth))

	s.evaluateAchievements()
	if err := s.persist(ctx); err != nil {
		return false, err
	}
	s.log.WithFields(logrus.Fields{"skill": name, "level": sk.Level, "nextCost": sk.Cost}).Info("skill upgraded")
	return true, nil
}
