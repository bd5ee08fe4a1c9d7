package services

import (
	"context"
	"strings"

	"github.com/eumoitinho/DASHBOARDNINETWO/internal/models"
	"github.com/eumoitinho/DASHBOARDNINETWO/internal/repositories"
)

const defaultTagColor = "primary"

// TagService implements the tag fan-out operations. Tags have no table of
// their own: both operations scan every client and rewrite the tag sequences
// that contain the raw value, one persistence write per affected client.
// There is no cross-record atomicity; a failure mid-loop leaves already
// written clients updated (documented best-effort contract).
type TagService interface {
	Update(ctx context.Context, id, name, color string) (*models.Tag, error)
	Delete(ctx context.Context, id string) (int, error)
}

type tagService struct {
	clientRepo repositories.ClientRepository
}

func NewTagService(clientRepo repositories.ClientRepository) TagService {
	return &tagService{clientRepo: clientRepo}
}

func (s *tagService) Update(ctx context.Context, id, name, color string) (*models.Tag, error) {
	newName := strings.TrimSpace(name)
	if newName == "" {
		return nil, ErrTagNameRequired
	}
	if color == "" {
		color = defaultTagColor
	}

	rawValue := models.TagValueFromID(id)

	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, client := range clients {
		if !client.HasTag(rawValue) {
			continue
		}
		updated := make([]string, len(client.Tags))
		for i, tag := range client.Tags {
			if tag == rawValue {
				updated[i] = newName
			} else {
				updated[i] = tag
			}
		}
		if err := s.clientRepo.UpdateTags(ctx, client.ID, updated); err != nil {
			return nil, err
		}
		count++
	}

	// The returned id is the one the caller addressed; renames derive a new
	// id for future requests since identity follows the value.
	return &models.Tag{
		ID:    id,
		Name:  newName,
		Color: color,
		Count: count,
	}, nil
}

func (s *tagService) Delete(ctx context.Context, id string) (int, error) {
	rawValue := models.TagValueFromID(id)

	clients, err := s.clientRepo.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, client := range clients {
		if !client.HasTag(rawValue) {
			continue
		}
		updated := make([]string, 0, len(client.Tags))
		for _, tag := range client.Tags {
			if tag != rawValue {
				updated = append(updated, tag)
			}
		}
		if err := s.clientRepo.UpdateTags(ctx, client.ID, updated); err != nil {
			return count, err
		}
		count++
	}

	// Deleting a tag nobody holds is still a success
	return count, nil
}
