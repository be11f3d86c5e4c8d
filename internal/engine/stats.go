package engine

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// StatView is a single stat with its derived tier info.
type StatView struct {
	Name     string
	Value    int
	Tier     Tier
	Progress int
}

// Stats lists all stats sorted by name with tiers resolved against the
// current mega unlock state.
func (s *Service) Stats() []StatView {
	out := make([]StatView, 0, len(s.state.Stats))
	for name, v := range s.state.Stats {
		out = append(out, StatView{
			Name:     name,
			Value:    v,
			Tier:     s.state.StatTier(v),
			Progress: int(TierProgress(v)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func canonicalStatName(name string) (string, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return "", ValidationError{Reason: "stat name is required"}
	}
	return name, nil
}

// AddStat creates a new stat at zero. Names are upper-cased and must be
// unique.
func (s *Service) AddStat(ctx context.Context, name string) error {
	name, err := canonicalStatName(name)
	if err != nil {
		return err
	}
	if _, ok := s.state.Stats[name]; ok {
		return DuplicateError{Name: name}
	}

	s.state.Stats[name] = 0
	s.state.Level = s.state.computeLevel()
	if err := s.persist(ctx); err != nil {
		return err
	}
	s.log.WithField("stat", name).Info("stat added")
	return nil
}

// RenameStat renames a stat and rewrites every quest and challenge boost
// that referenced the old name.
func (s *Service) RenameStat(ctx context.Context, oldName, newName string) error {
	oldName = strings.ToUpper(strings.TrimSpace(oldName))
	newName, err := canonicalStatName(newName)
	if err != nil {
		return err
	}
	value, ok := s.state.Stats[oldName]
	if !ok {
		return NotFoundError{Kind: "stat", ID: oldName}
	}
	if newName == oldName {
		return nil
	}
	if _, ok := s.state.Stats[newName]; ok {
		return DuplicateError{Name: newName}
	}

	delete(s.state.Stats, oldName)
	s.state.Stats[newName] = value
	s.rewriteStatRefs(func(boosts map[string]int) {
		if v, ok := boosts[oldName]; ok {
			delete(boosts, oldName)
			boosts[newName] = v
		}
	})

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"from": oldName, "to": newName}).Info("stat renamed")
	return nil
}

// DeleteStat removes a stat and strips it from every quest and challenge
// boost. The last remaining stat cannot be deleted.
func (s *Service) DeleteStat(ctx context.Context, name string) error {
	name = strings.ToUpper(strings.TrimSpace(name))
	if _, ok := s.state.Stats[name]; !ok {
		return NotFoundError{Kind: "stat", ID: name}
	}
	if len(s.state.Stats) == 1 {
		return LastStatError{Name: name}
	}

	delete(s.state.Stats, name)
	s.rewriteStatRefs(func(boosts map[string]int) {
		delete(boosts, name)
	})
	s.state.Level = s.state.computeLevel()

	if err := s.persist(ctx); err != nil {
		return err
	}
	s.log.WithField("stat", name).Info("stat deleted")
	return nil
}

// rewriteStatRefs applies fn to the boost map of every quest and every
// active or custom challenge.
func (s *Service) rewriteStatRefs(fn func(boosts map[string]int)) {
	for _, q := range s.state.Quests {
		fn(q.StatBoosts)
	}
	for _, q := range s.state.Challenges() {
		fn(q.StatBoosts)
	}
}
