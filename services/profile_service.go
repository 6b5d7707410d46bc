package services

import (
	"goblog/models"
	"goblog/repositories"
)

type ProfileService interface {
	GetProfile(userID uint) (*models.Profile, []models.Post, error)
	UpdateProfile(userID uint, req models.ProfileRequest) (*models.Profile, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	postRepo    repositories.PostRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, postRepo repositories.PostRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		postRepo:    postRepo,
	}
}

// GetProfile fetches the user's profile, creating it on first access,
// along with all of the user's posts, drafts included.
func (s *profileService) GetProfile(userID uint) (*models.Profile, []models.Post, error) {
	profile, err := s.profileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.postRepo.GetByAuthor(userID)
	if err != nil {
		return nil, nil, err
	}

	return profile, posts, nil
}

// UpdateProfile writes the profile fields and the user's name/email as
// one unit. Assumes the request already passed form validation.
func (s *profileService) UpdateProfile(userID uint, req models.ProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	profile.Bio = req.Bio
	profile.Location = req.Location
	profile.Website = req.Website
	profile.Phone = req.Phone
	if req.Avatar != "" {
		profile.Avatar = req.Avatar
	}

	user := profile.User
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email

	if err := s.profileRepo.UpdateWithUser(profile, &user); err != nil {
		return nil, err
	}

	profile.User = user
	return profile, nil
}
