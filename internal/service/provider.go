package service

import (
	repo "github.com/AnvilCoder/SecondHand/internal/repository"
)

type AuthService struct {
	userStore repo.UserStore
}

type UserService struct {
	userStore    repo.UserStore
	imageService *ImageService
}

type AdService struct {
	adStore      repo.AdStore
	imageService *ImageService
}

type CommentService struct {
	commentStore repo.CommentStore
	adStore      repo.AdStore
}

type ImageService struct {
	imageStore repo.ImageStore
}

type Services struct {
	Auth    *AuthService
	User    *UserService
	Ad      *AdService
	Comment *CommentService
	Image   *ImageService
}

func NewAuthService(userStore repo.UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

func NewUserService(userStore repo.UserStore, imageService *ImageService) *UserService {
	return &UserService{userStore: userStore, imageService: imageService}
}

func NewAdService(adStore repo.AdStore, imageService *ImageService) *AdService {
	return &AdService{adStore: adStore, imageService: imageService}
}

func NewCommentService(commentStore repo.CommentStore, adStore repo.AdStore) *CommentService {
	return &CommentService{commentStore: commentStore, adStore: adStore}
}

func NewImageService(imageStore repo.ImageStore) *ImageService {
	return &ImageService{imageStore: imageStore}
}

func NewServices(repos *repo.Repositories) *Services {
	imageService := NewImageService(repos.Image)
	return &Services{
		Auth:    NewAuthService(repos.User),
		User:    NewUserService(repos.User, imageService),
		Ad:      NewAdService(repos.Ad, imageService),
		Comment: NewCommentService(repos.Comment, repos.Ad),
		Image:   imageService,
	}
}
