package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"casa_hotels_go/config"
	"casa_hotels_go/db"
	"casa_hotels_go/services"

	"golang.org/x/term"
)

func main() {
	slug := flag.String("property", "", "property slug, e.g. casa-camino")
	file := flag.String("file", "", "path to a JPEG, PNG, GIF or WebP image")
	isMain := flag.Bool("main", false, "make this the property's main photo")
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	flag.Parse()

	if *slug == "" || *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg := config.Load()

	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	property, err := services.GetPropertyBySlug(db.DB, *slug)
	if err != nil {
		log.Fatalf("Failed to find property %q: %v", *slug, err)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	if *isMain && !*yes && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Printf("Replace the main photo of %s? [y/N] ", property.Name)
		answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted")
			return
		}
	}

	services.InitializeStorage(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := services.UploadImageReader(ctx, services.Storage, data, path.Join("properties", property.Slug))
	if err != nil {
		log.Fatalf("Failed to upload image: %v", err)
	}

	photo, err := services.AddPropertyPhoto(db.DB, property, result.URL, result.PublicID, *isMain)
	if err != nil {
		// Keep storage in sync with the catalogue
		if derr := services.DeleteImage(ctx, services.Storage, result.PublicID); derr != nil {
			log.Printf("[WARNING] Failed to remove orphaned upload %s: %v", result.PublicID, derr)
		}
		log.Fatalf("Failed to attach photo: %v", err)
	}

	fmt.Println()
	fmt.Println("=== Photo uploaded ===")
	fmt.Printf("Property: %s\n", property.Name)
	fmt.Printf("URL:      %s\n", photo.URL)
	fmt.Printf("Key:      %s\n", photo.StorageKey)
	fmt.Printf("Main:     %t\n", photo.IsMain)
}
