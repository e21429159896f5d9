package main

import (
	"flag"
	"fmt"
	"log"

	"cat-tracker/app/config"
	"cat-tracker/app/domain"
	"cat-tracker/app/models"
	"cat-tracker/app/store"
)

func main() {
	handle := flag.String("user", "", "login handle for the new student")
	password := flag.String("password", "", "password for the new student")
	name := flag.String("name", "", "display name for the new student")
	flag.Parse()

	if *handle == "" || *password == "" || *name == "" {
		log.Fatal("Usage: add_user -user <handle> -password <password> -name <display name>")
	}

	cfg := config.Load()
	tracker, err := domain.NewTracker(store.New(cfg.DataFile))
	if err != nil {
		log.Printf("Warning: data file problem: %v", err)
	}

	acc, err := tracker.CreateAccount(*handle, *password, *name, models.RoleStudent)
	if err != nil {
		log.Fatalf("Error creating student: %v", err)
	}

	fmt.Printf("Student created successfully: %s (%s)\n", acc.Name, acc.Handle)
}
