package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixture []byte

// Fixture describes users, boards and tasks to create. Boards and tasks
// refer to users by username.
type Fixture struct {
	Users  []UserFixture  `yaml:"users"`
	Boards []BoardFixture `yaml:"boards"`
}

type UserFixture struct {
	Username  string `yaml:"username"`
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Password  string `yaml:"password"`
}

type BoardFixture struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Owner       string        `yaml:"owner"`
	Tasks       []TaskFixture `yaml:"tasks"`
}

type TaskFixture struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Assignee    string `yaml:"assignee"`
}

// Default returns the built-in demo fixture
func Default() (*Fixture, error) {
	return Parse(defaultFixture)
}

// LoadFile reads a fixture from a YAML file
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML fixture and checks its username references
func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}

	known := make(map[string]bool, len(f.Users))
	for _, u := range f.Users {
		if u.Username == "" {
			return nil, fmt.Errorf("fixture user without username")
		}
		known[u.Username] = true
	}

	for _, b := range f.Boards {
		if !known[b.Owner] {
			return nil, fmt.Errorf("board %q: unknown owner %q", b.Name, b.Owner)
		}
		for _, t := range b.Tasks {
			if t.Assignee != "" && !known[t.Assignee] {
				return nil, fmt.Errorf("task %q: unknown assignee %q", t.Title, t.Assignee)
			}
		}
	}

	return &f, nil
}
