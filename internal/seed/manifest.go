package seed

import (
	"fmt"
	"log"
	"os"

	"glimpse/internal/models"

	"gopkg.in/yaml.v3"
)

// Manifest describes a deterministic seed scenario loaded from a YAML file.
// It complements the randomized mesh seeding with named users and explicit
// relationships, which is useful for demo environments and manual QA.
type Manifest struct {
	Users []ManifestUser `yaml:"users"`
}

// ManifestUser is a single user entry in a seed manifest.
type ManifestUser struct {
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	Follows  []string `yaml:"follows"`
	Posts    []string `yaml:"posts"`
	Stories  int      `yaml:"stories"`
}

// LoadManifest reads and parses a seed manifest from path.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m.Users) == 0 {
		return nil, fmt.Errorf("manifest has no users")
	}
	return &m, nil
}

// ApplyManifest creates the users, posts, stories and follow edges the
// manifest describes. Follow targets must name users defined in the manifest.
func (s *Seeder) ApplyManifest(m *Manifest) error {
	created := make(map[string]*models.User, len(m.Users))

	for _, entry := range m.Users {
		entry := entry
		user, err := s.factory.CreateUser(func(u *models.User) {
			u.Username = entry.Username
			if entry.Password != "" && s.factory.opts.SkipBcrypt {
				u.Password = entry.Password
			}
		})
		if err != nil {
			return fmt.Errorf("failed to create user %q: %w", entry.Username, err)
		}
		created[entry.Username] = user

		for _, content := range entry.Posts {
			content := content
			if _, err := s.factory.CreatePost(user, func(p *models.Post) {
				p.Content = content
				p.Image = ""
			}); err != nil {
				return fmt.Errorf("failed to create post for %q: %w", entry.Username, err)
			}
		}
		for i := 0; i < entry.Stories; i++ {
			if _, err := s.factory.CreateStory(user); err != nil {
				return fmt.Errorf("failed to create story for %q: %w", entry.Username, err)
			}
		}
	}

	for _, entry := range m.Users {
		follower := created[entry.Username]
		for _, target := range entry.Follows {
			following, ok := created[target]
			if !ok {
				return fmt.Errorf("user %q follows unknown user %q", entry.Username, target)
			}
			if err := s.factory.CreateFollow(follower, following); err != nil {
				return fmt.Errorf("failed to create follow %s -> %s: %w", entry.Username, target, err)
			}
		}
	}

	log.Printf("✓ Manifest applied: %d users", len(created))
	return nil
}
