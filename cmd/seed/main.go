// Package main provides a tool to seed the database with sample content.
//
// It creates a handful of published and draft articles with tags and
// comments, which is enough to exercise the listing, detail, similar,
// search, and feed endpoints during development.
//
// Usage:
//
//	DATA_PATH=~/Inkwell/data go run ./cmd/seed
//	DATA_PATH=~/Inkwell/data go run ./cmd/seed --with-comments=false
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/inkwellapp/inkwell-server/internal/domain"
	"github.com/inkwellapp/inkwell-server/internal/search"
	"github.com/inkwellapp/inkwell-server/internal/service"
	"github.com/inkwellapp/inkwell-server/internal/store"
	"github.com/inkwellapp/inkwell-server/internal/validation"
)

var withComments = flag.Bool("with-comments", true, "Also attach sample comments to published articles")

type seedArticle struct {
	title    string
	body     string
	status   string
	tags     []string
	daysAgo  int
	comments []string
}

var seedArticles = []seedArticle{
	{
		title:   "Why We Moved Our Blog to a Single Binary",
		body:    "Running a publication from one process simplifies deploys.\n\nNo app server, no cron, no separate search daemon. Everything lives behind a single port.",
		status:  "published",
		tags:    []string{"go", "infrastructure"},
		daysAgo: 14,
		comments: []string{
			"This matches our experience exactly.",
			"What about zero-downtime deploys?",
		},
	},
	{
		title:   "Tag Similarity Beats Machine Learning for Small Blogs",
		body:    "With a few hundred posts, counting shared tags and breaking ties by recency recommends better than anything trained.",
		status:  "published",
		tags:    []string{"go", "recommendations"},
		daysAgo: 7,
		comments: []string{
			"Simple and it works. Nice writeup.",
		},
	},
	{
		title:   "Full-Text Search Without a Search Server",
		body:    "An embedded index keeps search inside the process. Rebuilding from the database on startup makes drift a non-issue.",
		status:  "published",
		tags:    []string{"search", "infrastructure"},
		daysAgo: 3,
	},
	{
		title:   "Designing a Comment Form People Actually Use",
		body:    "Three fields, no account, moderation after the fact. Friction kills conversation faster than spam does.",
		status:  "published",
		tags:    []string{"writing"},
		daysAgo: 1,
	},
	{
		title:   "Upcoming: Scheduled Publishing",
		body:    "Draft notes on letting posts go live at a future timestamp.",
		status:  "draft",
		tags:    []string{"writing"},
		daysAgo: 0,
	},
}

func main() {
	flag.Parse()

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to resolve home directory: %v", err)
		}
		dataPath = filepath.Join(home, "Inkwell", "data")
	}
	if err := os.MkdirAll(dataPath, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	fmt.Printf("Seeding data under: %s\n", dataPath)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	st, err := store.Open(filepath.Join(dataPath, "inkwell.db"), logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	index, err := search.NewIndex(search.Options{DataPath: dataPath, Logger: logger})
	if err != nil {
		log.Fatalf("Failed to open search index: %v", err)
	}
	defer index.Close()

	validate := validation.New()
	content := service.NewContentService(st, index, validate, logger, 3)
	comments := service.NewCommentService(st, validate, logger)

	ctx := context.Background()
	now := time.Now().UTC()
	created := 0
	commented := 0

	for _, seed := range seedArticles {
		publishedAt := now.AddDate(0, 0, -seed.daysAgo)

		article, err := content.CreateArticle(ctx, service.CreateArticleInput{
			Title:       seed.title,
			AuthorID:    "author-seed",
			Body:        seed.body,
			Status:      seed.status,
			TagSlugs:    seed.tags,
			PublishedAt: &publishedAt,
		})
		if err != nil {
			// Re-running the seeder hits the per-day slug constraint.
			log.Printf("Skipping %q: %v", seed.title, err)
			continue
		}
		created++
		fmt.Printf("Created %s article: %s\n", article.Status, article.Title)

		if !*withComments || article.Status != domain.StatusPublished {
			continue
		}
		y, m, d := article.PublishDay()
		for i, body := range seed.comments {
			_, err := comments.AddComment(ctx, y, m, d, article.Slug, service.AddCommentInput{
				Name:  fmt.Sprintf("Reader %d", i+1),
				Email: fmt.Sprintf("reader%d@example.com", i+1),
				Body:  body,
			})
			if err != nil {
				log.Printf("Failed to add comment to %q: %v", article.Title, err)
				continue
			}
			commented++
		}
	}

	fmt.Printf("\nDone: %d articles created, %d comments added\n", created, commented)
}
