package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	. "github.com/ttpr0/go-mosp/util"
)

func NewProfileManager(ctx context.Context, config Config) (*ProfileManager, error) {
	if err := os.MkdirAll(config.GraphDir, 0o755); err != nil {
		return nil, fmt.Errorf("create graph dir: %w", err)
	}

	manager := &ProfileManager{
		config:   config,
		profiles: NewDict[string, *Profile](config.Profiles.Length()),
	}
	for name, options := range config.Profiles {
		path := filepath.Join(config.GraphDir, name)
		var profile *Profile
		var err error
		if !config.Rebuild && _ProfileExists(path) {
			profile, err = LoadProfile(name, path, *options)
		} else {
			profile, err = BuildProfile(ctx, name, path, *options)
		}
		if err != nil {
			return nil, fmt.Errorf("profile %v: %w", name, err)
		}
		manager.profiles.Set(name, profile)
	}
	return manager, nil
}

type ProfileManager struct {
	config   Config
	profiles Dict[string, *Profile]
}

func (self *ProfileManager) GetProfile(profile string) Optional[*Profile] {
	if self.profiles.ContainsKey(profile) {
		return Some(self.profiles.Get(profile))
	}
	return None[*Profile]()
}

func (self *ProfileManager) ProfileNames() []string {
	names := make([]string, 0, self.profiles.Length())
	for name := range self.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
