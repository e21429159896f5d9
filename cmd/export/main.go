package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"cat-tracker/app/config"
	"cat-tracker/app/domain"
	exportfmt "cat-tracker/app/export"
	"cat-tracker/app/store"
)

// Dumps mock-test records from the data file as CSV, either for one student
// or for the whole class with owner columns.
func main() {
	student := flag.String("student", "", "student handle; empty exports all students")
	out := flag.String("out", "", "output file; empty writes to stdout")
	flag.Parse()

	cfg := config.Load()
	tracker, err := domain.NewTracker(store.New(cfg.DataFile))
	if err != nil {
		log.Printf("Warning: data file problem: %v", err)
	}

	var content string
	if *student != "" {
		acc, ok := tracker.Account(*student)
		if !ok {
			log.Fatalf("No such student: %s", *student)
		}
		records := tracker.ListRecords(*student)
		if len(records) == 0 {
			log.Fatalf("No records to export for %s", *student)
		}
		content = exportfmt.FormatStudentExport(acc.Name, records)
	} else {
		rows := tracker.AllRecordRows("")
		if len(rows) == 0 {
			log.Fatal("No records to export")
		}
		content = exportfmt.FormatAllStudentsExport(rows)
	}

	if *out == "" {
		fmt.Println(content)
		return
	}
	if err := os.WriteFile(*out, []byte(content), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	fmt.Printf("Exported to %s\n", *out)
}
