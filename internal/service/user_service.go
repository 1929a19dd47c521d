package service

import (
	"context"
	"time"

	"woodshop-assistant-be/internal/dto"
	"woodshop-assistant-be/internal/entity"
	"woodshop-assistant-be/pkg/identity"

	gocache "github.com/patrickmn/go-cache"
)

type IUserService interface {
	// GetProfile returns the full identity profile, served from a short
	// cache. Sentinel errors from the identity client pass through.
	GetProfile(ctx context.Context, userId string) (*entity.UserProfile, error)

	// GetUser is the public proxy shape: id and display name only.
	GetUser(ctx context.Context, userId string) (*dto.UserResponse, error)
}

type userService struct {
	identityClient *identity.ClerkClient
	cache          *gocache.Cache
}

func NewUserService(identityClient *identity.ClerkClient) IUserService {
	return &userService{
		identityClient: identityClient,
		cache:          gocache.New(5*time.Minute, 10*time.Minute),
	}
}

var _ IUserService = &userService{}

func (s *userService) GetProfile(ctx context.Context, userId string) (*entity.UserProfile, error) {
	if cached, found := s.cache.Get(userId); found {
		return cached.(*entity.UserProfile), nil
	}

	profile, err := s.identityClient.GetUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	s.cache.Set(userId, profile, gocache.DefaultExpiration)
	return profile, nil
}

func (s *userService) GetUser(ctx context.Context, userId string) (*dto.UserResponse, error) {
	profile, err := s.GetProfile(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &dto.UserResponse{
		Id:        profile.Id,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	}, nil
}
