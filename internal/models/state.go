package models

import "github.com/swiftup/swiftup/internal/utils"

// State is the persisted view of the local installation: which toolchains
// are present and which one the active symlink points at.
type State struct {
	Installed []string `yaml:"installed"`
	InUse     string   `yaml:"in_use,omitempty"`
}

func (s *State) Has(name string) bool {
	return utils.Includes(s.Installed, name)
}

func (s *State) Add(name string) {
	if !s.Has(name) {
		s.Installed = append(s.Installed, name)
	}
}

func (s *State) Remove(name string) {
	s.Installed = utils.Filter(s.Installed, func(t string) bool { return t != name })
	if s.InUse == name {
		s.InUse = ""
	}
}
