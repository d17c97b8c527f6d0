package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"glimpse/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	SkipBcrypt  bool
	MaxDays     int
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll removes all seeded data. Deletion order respects foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	tables := []interface{}{
		&models.Like{}, &models.Comment{}, &models.Follow{},
		&models.Story{}, &models.Post{}, &models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedSocialMesh creates count users and a randomized follow graph between
// them. Every user follows roughly a quarter of the others.
func (s *Seeder) SeedSocialMesh(count int) ([]*models.User, error) {
	log.Printf("🌱 Creating %d users...", count)

	users := make([]*models.User, 0, count)

	// Always include some well-known users for local development logins
	if count >= 2 {
		for _, name := range []string{"alice", "bob"} {
			user, err := s.factory.CreateUser(func(u *models.User) {
				u.Username = name
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create user %s: %w", name, err)
			}
			users = append(users, user)
		}
	}

	for i := len(users); i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d users...", i)
		}
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	edges := 0
	for _, follower := range users {
		for _, following := range users {
			if follower.ID == following.ID {
				continue
			}
			if r.Float32() < 0.25 {
				if err := s.factory.CreateFollow(follower, following); err != nil {
					return nil, fmt.Errorf("failed to create follow: %w", err)
				}
				edges++
			}
		}
	}
	log.Printf("✓ %d users and %d follow edges created", len(users), edges)

	return users, nil
}

// SeedEngagement creates numPosts posts spread across the given users, plus
// stories, likes and comments referencing them.
func (s *Seeder) SeedEngagement(users []*models.User, numPosts int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to seed engagement for")
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	log.Printf("🌱 Creating %d posts...", numPosts)
	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		user := users[r.Intn(len(users))]
		post, err := s.factory.CreatePost(user)
		if err != nil {
			return nil, fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d posts...", i)
		}
	}

	// A story for roughly a third of the users
	stories := 0
	for _, user := range users {
		if r.Float32() < 0.33 {
			if _, err := s.factory.CreateStory(user); err != nil {
				return nil, fmt.Errorf("failed to create story: %w", err)
			}
			stories++
		}
	}

	// Likes and comments
	likes, comments := 0, 0
	for _, post := range posts {
		for _, user := range users {
			if r.Float32() < 0.15 {
				if err := s.factory.CreateLike(user, post); err != nil {
					return nil, fmt.Errorf("failed to create like: %w", err)
				}
				likes++
			}
		}
		numComments := r.Intn(4)
		for i := 0; i < numComments; i++ {
			user := users[r.Intn(len(users))]
			if _, err := s.factory.CreateComment(user, post); err != nil {
				return nil, fmt.Errorf("failed to create comment: %w", err)
			}
			comments++
		}
	}

	log.Printf("✓ %d posts, %d stories, %d likes, %d comments created", len(posts), stories, likes, comments)
	return posts, nil
}
