package service

import (
	"context"

	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/internal/repository"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TestimonialServiceImpl struct {
	repo     repository.TestimonialRepository
	userRepo repository.UserRepository
}

func CreateTestimonialService(repo repository.TestimonialRepository, userRepo repository.UserRepository) TestimonialService {
	return &TestimonialServiceImpl{repo: repo, userRepo: userRepo}
}

func (s *TestimonialServiceImpl) GetTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return s.repo.GetTestimonials(ctx)
}

func (s *TestimonialServiceImpl) GetTestimonialByID(ctx context.Context, id string) (testimonial domain.Testimonial, err error) {
	testimonialID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return testimonial, errs.ErrClient
	}

	return s.repo.GetTestimonialByID(ctx, testimonialID)
}

func (s *TestimonialServiceImpl) AddTestimonial(ctx context.Context, payload dto.TestimonialRequest) (testimonial domain.Testimonial, err error) {
	user, err := s.userRepo.GetUserByEmail(ctx, payload.Email)
	if err != nil {
		return testimonial, err
	}

	testimonial = domain.Testimonial{
		User: domain.UserRef{
			ID:      user.ID,
			Email:   user.Email,
			Name:    user.Name,
			Profile: user.Profile,
		},
		Message: payload.Message,
	}

	testimonialID, err := s.repo.AddTestimonial(ctx, testimonial)
	if err != nil {
		return testimonial, err
	}
	testimonial.ID = testimonialID

	return testimonial, nil
}

func (s *TestimonialServiceImpl) DeleteTestimonial(ctx context.Context, id string) error {
	testimonialID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	if _, err = s.repo.GetTestimonialByID(ctx, testimonialID); err != nil {
		return err
	}

	return s.repo.DeleteTestimonial(ctx, testimonialID)
}
