// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrUnknownBoard = errors.New("unknown board")

// Board names served at fixed endpoints
const (
	BoardGroups     = "groups"
	BoardIndividual = "individual"
)

// Sheet column names
const (
	ColGroup              = "مجموعة"
	ColGroupOfMember      = "المجموعة"
	ColName               = "الأسم"
	ColTotalAttendance    = "مجموع الحضور"
	ColTotalParticipation = "مجموع المشاركة"
	ColGroupProject       = "مشروع جماعي"
	ColIndividualProject  = "مشروع فردي"
	ColProjectCreativity  = "الإبداع في المشروع"
	ColBook1              = "كتاب 1"
	ColBook2              = "كتاب 2"
	ColTotalScore         = "مجموع الدرجات"
)

// Board is one ranked view over a sheet range
type Board struct {
	Name  string     `yaml:"name" json:"name"`
	Range string     `yaml:"range" json:"range"`
	Keys  []string   `yaml:"keys" json:"keys"`
	Sort  []SortRule `yaml:"sort" json:"sort"`
}

// Rank projects an already fetched grid with the board's keys and rules
func (b Board) Rank(grid Grid) []Record {
	return Project(grid, b.Keys, b.Sort)
}

// Validate checks the board can be served
func (b Board) Validate() error {
	if b.Name == "" {
		return errors.New("board name is required")
	}
	if b.Range == "" {
		return fmt.Errorf("board %q: range is required", b.Name)
	}
	if len(b.Keys) == 0 {
		return fmt.Errorf("board %q: at least one key is required", b.Name)
	}
	seen := make(map[string]bool, len(b.Keys))
	for _, k := range b.Keys {
		if seen[k] {
			return fmt.Errorf("board %q: key %q listed twice", b.Name, k)
		}
		seen[k] = true
	}
	for i, rule := range b.Sort {
		if rule.Key == "" {
			return fmt.Errorf("board %q: sort rule %d has no key", b.Name, i)
		}
		switch rule.Direction {
		case Ascending, Descending:
		default:
			return fmt.Errorf("board %q: sort rule %d: direction must be asc or desc, got %q", b.Name, i, rule.Direction)
		}
		switch rule.Typing {
		case Numeric, Lexicographic:
		default:
			return fmt.Errorf("board %q: sort rule %d: typing must be numeric or lexicographic, got %q", b.Name, i, rule.Typing)
		}
	}
	return nil
}

// Boards is an ordered set of boards, unique by name
type Boards []Board

// Lookup returns the board with the given name
func (bs Boards) Lookup(name string) (Board, error) {
	for _, b := range bs {
		if b.Name == name {
			return b, nil
		}
	}
	return Board{}, fmt.Errorf("%w: %s", ErrUnknownBoard, name)
}

// Merge returns bs with other applied on top: same-named boards are replaced in
// place, new ones are appended.
func (bs Boards) Merge(other Boards) Boards {
	merged := make(Boards, len(bs), len(bs)+len(other))
	copy(merged, bs)

	for _, b := range other {
		replaced := false
		for i := range merged {
			if merged[i].Name == b.Name {
				merged[i] = b
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, b)
		}
	}
	return merged
}

// DefaultBoards returns the groups and individual boards
func DefaultBoards(groupsRange, individualRange string) Boards {
	return Boards{
		{
			Name:  BoardGroups,
			Range: groupsRange,
			Keys: []string{
				ColGroup,
				ColTotalAttendance,
				ColTotalParticipation,
				ColGroupProject,
				ColBook1,
				ColBook2,
				ColTotalScore,
			},
			Sort: []SortRule{
				{Key: ColTotalScore, Direction: Descending, Typing: Numeric},
			},
		},
		{
			Name:  BoardIndividual,
			Range: individualRange,
			Keys: []string{
				ColName,
				ColTotalAttendance,
				ColTotalParticipation,
				ColIndividualProject,
				ColProjectCreativity,
				ColBook1,
				ColBook2,
				ColTotalScore,
				ColGroupOfMember,
			},
			Sort: []SortRule{
				{Key: ColTotalScore, Direction: Descending, Typing: Numeric},
				{Key: ColName, Direction: Ascending, Typing: Lexicographic},
			},
		},
	}
}

type boardsFile struct {
	Boards Boards `yaml:"boards"`
}

// LoadBoards reads board definitions from a YAML file
func LoadBoards(path string) (Boards, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boards file: %w", err)
	}

	var f boardsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse boards file: %w", err)
	}

	seen := make(map[string]bool, len(f.Boards))
	for _, b := range f.Boards {
		if err := b.Validate(); err != nil {
			return nil, err
		}
		if seen[b.Name] {
			return nil, fmt.Errorf("board %q defined twice", b.Name)
		}
		seen[b.Name] = true
	}

	return f.Boards, nil
}
