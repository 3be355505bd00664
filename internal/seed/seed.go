package seed

import (
	"log"

	"persona/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumProfiles int
	CommentsPer int
	MaxLikes    int
	ShouldClean bool
}

// Seeder populates the database with demo profiles, comments and likes.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seedable data. Deletion order respects the
// like -> comment -> profile references.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []any{&models.Like{}, &models.Comment{}, &models.Profile{}} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

// Run seeds profiles with comments and a spread of likes per Options.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	log.Printf("Seeding %d profiles with %d comments each...", opts.NumProfiles, opts.CommentsPer)

	for i := 0; i < opts.NumProfiles; i++ {
		profile, err := s.factory.CreateProfile()
		if err != nil {
			return err
		}

		for j := 0; j < opts.CommentsPer; j++ {
			comment, err := s.factory.CreateComment(profile)
			if err != nil {
				return err
			}

			likes := 0
			if opts.MaxLikes > 0 {
				likes = s.factory.r.Intn(opts.MaxLikes + 1)
			}
			for k := 0; k < likes; k++ {
				if err := s.factory.CreateLike(comment, uuid.NewString()); err != nil {
					return err
				}
			}
		}
	}

	log.Println("Seeding complete.")
	return nil
}
