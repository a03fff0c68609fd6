package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"media-verse/pkg/config"
	"media-verse/pkg/database"
	"media-verse/pkg/logger"
	"media-verse/pkg/models"
	"media-verse/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	var withImages bool
	flag.BoolVar(&withImages, "images", false, "Download a cat picture per post and upload it to S3")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithLevel(cfg.LogLevel)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	var s3Client *s3.Client
	if withImages {
		s3Client, err = s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			panic(err)
		}
	}

	if err := seedDatabase(context.Background(), db, s3Client, cfg.DefaultProfilePicture, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, db *gorm.DB, s3Client *s3.Client, defaultPicture string, log *logger.Logger) error {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	testUsers := []struct {
		email    string
		name     string
		password string
		bio      string
	}{
		{"alice@test.com", "Alice", "password123", "Cat person"},
		{"bob@test.com", "Bob", "password123", ""},
		{"charlie@test.com", "Charlie", "password123", "Photos and more photos"},
		{"diana@test.com", "Diana", "password123", ""},
		{"eve@test.com", "Eve", "password123", "Just looking"},
	}

	userIDs := make([]string, 0, len(testUsers))
	var postIDs []string

	for i, userData := range testUsers {
		var existing models.User
		err := db.WithContext(ctx).Where("email = ?", models.NormalizeEmail(userData.email)).First(&existing).Error
		if err == nil {
			log.Info("User %s already exists, skipping", userData.email)
			userIDs = append(userIDs, existing.ID)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up user %s: %w", userData.email, err)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &models.User{
			Email:          userData.email,
			Name:           userData.name,
			PasswordHash:   string(hashedPassword),
			ProfilePicture: defaultPicture,
			Bio:            userData.bio,
		}
		if err := db.WithContext(ctx).Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", userData.email, err)
			continue
		}

		log.Info("Created user: %s (%s)", user.Name, user.Email)
		userIDs = append(userIDs, user.ID)

		postsCount := 2 + i%3
		for j := 0; j < postsCount; j++ {
			postID, err := createPost(ctx, db, s3Client, httpClient, user, j, log)
			if err != nil {
				log.Error("Failed to create post %d for user %s: %v", j+1, user.Name, err)
				continue
			}
			postIDs = append(postIDs, postID)
		}
	}

	// Everyone likes every other post, every third post gets a share and a comment.
	for i, postID := range postIDs {
		for k, userID := range userIDs {
			if (i+k)%2 == 0 {
				like := &models.PostLike{PostID: postID, UserID: userID}
				if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
					log.Error("Failed to create like: %v", err)
				}
			}
		}

		if i%3 != 0 || len(userIDs) == 0 {
			continue
		}
		actor := userIDs[i%len(userIDs)]
		share := &models.PostShare{PostID: postID, UserID: actor}
		if err := db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(share).Error; err != nil {
			log.Error("Failed to create share: %v", err)
		}
		comment := &models.Comment{PostID: postID, UserID: actor, Content: "Love this one!"}
		if err := db.WithContext(ctx).Create(comment).Error; err != nil {
			log.Error("Failed to create comment: %v", err)
		}
	}

	log.Info("Created %d posts with likes, shares and comments", len(postIDs))
	return nil
}

func createPost(ctx context.Context, db *gorm.DB, s3Client *s3.Client, httpClient *http.Client, user *models.User, index int, log *logger.Logger) (string, error) {
	post := &models.Post{
		UserID:  user.ID,
		Content: fmt.Sprintf("Post #%d by %s", index+1, user.Name),
	}

	if s3Client != nil {
		media, err := uploadCatImage(ctx, s3Client, httpClient, user, index, log)
		if err != nil {
			log.Warn("Skipping image for post %d of %s: %v", index+1, user.Name, err)
		} else {
			post.Media = []models.PostMedia{*media}
		}
	}

	if err := db.WithContext(ctx).Create(post).Error; err != nil {
		return "", fmt.Errorf("failed to create post: %w", err)
	}

	log.Info("Created post %s by %s", post.ID, user.Name)
	return post.ID, nil
}

func uploadCatImage(ctx context.Context, s3Client *s3.Client, httpClient *http.Client, user *models.User, index int, log *logger.Logger) (*models.PostMedia, error) {
	cataasURL := "https://cataas.com/cat"
	if index%2 == 0 {
		cataasURL += fmt.Sprintf("/says/Hello from %s", user.Name)
	}

	log.Debug("Fetching cat image from %s", cataasURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cataasURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cat image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if len(imageData) == 0 {
		return nil, fmt.Errorf("received empty image data")
	}

	fileKey := fmt.Sprintf("posts/%s/images/seed_%d.jpg", user.ID, index)
	imageURL, err := s3Client.UploadFile(ctx, fileKey, bytes.NewReader(imageData), "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("failed to upload image to S3: %w", err)
	}

	return &models.PostMedia{
		Kind: models.MediaKindImage,
		URL:  imageURL,
		Key:  fileKey,
	}, nil
}
