package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/domain"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/exercisedb"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/repository"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/storage"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseExists   = errors.New("exercise with this name already exists")
	ErrValidationFailed = errors.New("exercise validation failed")
	ErrMediaNotFound    = errors.New("exercise has no uploaded media")
	ErrUploadURLError   = errors.New("failed to generate upload URL")
	ErrDownloadURLError = errors.New("failed to generate download URL")
)

// MediaUploadResponse carries the presigned URL and the key the client
// must report back once the upload finishes.
type MediaUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

type ExerciseService interface {
	CreateExercise(ctx context.Context, name, description, bodyPart, target, equipment, gifURL string, secondaryMuscles, instructions []string) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context) ([]domain.Exercise, error)

	// EnrichFromExerciseDB backfills metadata (gif URL, muscles,
	// instructions) from the external exercise database. Best-effort: an
	// upstream failure leaves the exercise unchanged and returns it as-is.
	EnrichFromExerciseDB(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)

	// Media upload for user-supplied demo clips.
	RequestMediaUploadURL(ctx context.Context, exerciseID primitive.ObjectID, contentType string) (*MediaUploadResponse, error)
	ConfirmMediaUpload(ctx context.Context, exerciseID primitive.ObjectID, objectKey string) (*domain.Exercise, error)
	GetMediaDownloadURL(ctx context.Context, exerciseID primitive.ObjectID) (string, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
	lookup       exercisedb.Lookup
	fileStorage  storage.FileStorage
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository, lookup exercisedb.Lookup, fileStorage storage.FileStorage) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
		lookup:       lookup,
		fileStorage:  fileStorage,
	}
}

// CreateExercise adds a definition to the library.
func (s *exerciseService) CreateExercise(ctx context.Context, name, description, bodyPart, target, equipment, gifURL string, secondaryMuscles, instructions []string) (*domain.Exercise, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrValidationFailed
	}

	exercise := &domain.Exercise{
		Name:             name,
		Slug:             slugify(name),
		Description:      description,
		BodyPart:         bodyPart,
		Target:           target,
		Equipment:        equipment,
		GifURL:           gifURL,
		SecondaryMuscles: secondaryMuscles,
		Instructions:     instructions,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrExerciseExists
		}
		return nil, err
	}
	exercise.ID = exerciseID
	return s.exerciseRepo.GetByID(ctx, exerciseID)
}

// GetExerciseByID retrieves a single exercise.
func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// ListExercises retrieves the whole library.
func (s *exerciseService) ListExercises(ctx context.Context) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx)
}

// EnrichFromExerciseDB backfills missing metadata from the upstream API.
func (s *exerciseService) EnrichFromExerciseDB(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	if s.lookup == nil {
		return exercise, nil
	}

	meta, err := s.lookup.FindByName(ctx, exercise.Name)
	if err != nil {
		log.Warnf("ExerciseDB lookup failed for %q: %v", exercise.Name, err)
		return exercise, nil
	}
	if meta == nil {
		return exercise, nil
	}

	if exercise.GifURL == "" {
		exercise.GifURL = meta.GifURL
	}
	if exercise.BodyPart == "" {
		exercise.BodyPart = meta.BodyPart
	}
	if exercise.Target == "" {
		exercise.Target = meta.Target
	}
	if exercise.Equipment == "" {
		exercise.Equipment = meta.Equipment
	}
	if len(exercise.SecondaryMuscles) == 0 {
		exercise.SecondaryMuscles = meta.SecondaryMuscles
	}
	if len(exercise.Instructions) == 0 {
		exercise.Instructions = meta.Instructions
	}

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// RequestMediaUploadURL generates a presigned PUT URL for a demo clip.
func (s *exerciseService) RequestMediaUploadURL(ctx context.Context, exerciseID primitive.ObjectID, contentType string) (*MediaUploadResponse, error) {
	lower := strings.ToLower(contentType)
	if !strings.HasPrefix(lower, "video/") && !strings.HasPrefix(lower, "image/") {
		return nil, errors.New("invalid or missing media content type")
	}

	exercise, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	fileExtension := ""
	parts := strings.Split(contentType, "/")
	if len(parts) == 2 {
		fileExtension = parts[1]
	}
	objectKey := path.Join("exercise-media", exercise.ID.Hex(), fmt.Sprintf("%s.%s", uuid.NewString(), fileExtension))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &MediaUploadResponse{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

// ConfirmMediaUpload records the uploaded object key on the exercise. The
// previous object, if any, is deleted from the bucket.
func (s *exerciseService) ConfirmMediaUpload(ctx context.Context, exerciseID primitive.ObjectID, objectKey string) (*domain.Exercise, error) {
	if objectKey == "" {
		return nil, errors.New("object key is required")
	}

	exercise, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}

	if old := exercise.MediaObjectKey; old != "" && old != objectKey {
		if err := s.fileStorage.DeleteObject(ctx, old); err != nil {
			log.Warnf("Failed to delete replaced media object %q: %v", old, err)
		}
	}

	exercise.MediaObjectKey = objectKey
	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		return nil, err
	}
	return exercise, nil
}

// GetMediaDownloadURL generates a presigned GET URL for the demo clip.
func (s *exerciseService) GetMediaDownloadURL(ctx context.Context, exerciseID primitive.ObjectID) (string, error) {
	exercise, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return "", err
	}
	if exercise.MediaObjectKey == "" {
		return "", ErrMediaNotFound
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, exercise.MediaObjectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", ErrDownloadURLError
	}
	return url, nil
}
