// Command main runs the database seeder for Persona.
package main

import (
	"flag"
	"log"

	"persona/internal/config"
	"persona/internal/database"
	"persona/internal/seed"
)

func main() {
	numProfiles := flag.Int("profiles", 20, "Number of profiles to create")
	commentsPer := flag.Int("comments", 10, "Number of comments per profile")
	maxLikes := flag.Int("max-likes", 15, "Maximum likes per comment")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d profiles, %d comments each, up to %d likes, clean=%v\n",
		*numProfiles, *commentsPer, *maxLikes, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Run(seed.Options{
		NumProfiles: *numProfiles,
		CommentsPer: *commentsPer,
		MaxLikes:    *maxLikes,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. The database is populated with demo data.")
}
