// Command main runs the database seeder for LostLink.
package main

import (
	"flag"
	"log"

	"lostlink/internal/config"
	"lostlink/internal/database"
	"lostlink/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 30, "Number of users to create")
	numPersons := flag.Int("persons", 40, "Number of missing-person reports to create")
	numAnimals := flag.Int("animals", 40, "Number of missing-animal reports to create")
	perReport := flag.Int("sightings", 5, "Max sightings per report")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d person reports, %d animal reports, clean=%v\n",
		*numUsers, *numPersons, *numAnimals, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedUsers(*numUsers)
	if err != nil {
		log.Fatalf("❌ User seeding failed: %v", err)
	}

	persons, animals, err := s.SeedReports(users, *numPersons, *numAnimals)
	if err != nil {
		log.Fatalf("❌ Report seeding failed: %v", err)
	}

	if err := s.SeedSightings(users, persons, animals, *perReport); err != nil {
		log.Fatalf("❌ Sighting seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
}
