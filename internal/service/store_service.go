package service

import (
	"context"

	"github.com/Umar-Zak/lyospot/config"
	"github.com/Umar-Zak/lyospot/internal/domain"
	"github.com/Umar-Zak/lyospot/internal/dto"
	"github.com/Umar-Zak/lyospot/internal/repository"
	"github.com/Umar-Zak/lyospot/pkg/errs"
	"github.com/Umar-Zak/lyospot/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultStoreProfile = "/assets/store/store.svg"

type StoreServiceImpl struct {
	repo         repository.StoreRepository
	userRepo     repository.UserRepository
	config       config.Config
	twilioClient *twilio.RestClient
}

func CreateStoreService(repo repository.StoreRepository, userRepo repository.UserRepository, config config.Config, twilioClient *twilio.RestClient) StoreService {
	return &StoreServiceImpl{repo: repo, userRepo: userRepo, config: config, twilioClient: twilioClient}
}

func (s *StoreServiceImpl) GetStores(ctx context.Context) ([]domain.Store, error) {
	return s.repo.GetStores(ctx)
}

func (s *StoreServiceImpl) GetStoreByID(ctx context.Context, id string) (store domain.Store, err error) {
	storeID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store, errs.ErrClient
	}

	return s.repo.GetStoreByID(ctx, storeID)
}

func (s *StoreServiceImpl) GetStoreByOwner(ctx context.Context, ownerID string) (store domain.Store, err error) {
	id, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return store, errs.ErrClient
	}

	return s.repo.GetStoreByOwnerID(ctx, id)
}

func (s *StoreServiceImpl) GetStoreByOwnerEmail(ctx context.Context, payload dto.StoreProfileRequest) (domain.Store, error) {
	return s.repo.GetStoreByOwnerEmail(ctx, payload.Email)
}

// CreateStore resolves the owning user, persists the store with an owner
// snapshot and flips the user's store flags. The returned token carries the
// refreshed hasStore/storeName claims.
func (s *StoreServiceImpl) CreateStore(ctx context.Context, payload dto.StoreRequest) (store domain.Store, token string, err error) {
	user, err := s.userRepo.GetUserByEmail(ctx, payload.Owner)
	if err != nil {
		return store, "", err
	}

	store = domain.Store{
		Name:        payload.Name,
		Contact:     payload.Contact,
		Address:     payload.Address,
		Account:     payload.Account,
		Country:     payload.Country,
		Description: payload.Description,
		Owner: domain.UserRef{
			ID:      user.ID,
			Email:   user.Email,
			Name:    user.Name,
			Profile: user.Profile,
		},
		Follows:   []string{},
		Feedbacks: []domain.Feedback{},
		Profile:   defaultStoreProfile,
	}
	if payload.Profile != "" {
		store.Profile = payload.Profile
	}

	storeID, err := s.repo.AddStore(ctx, store)
	if err != nil {
		return store, "", err
	}
	store.ID = storeID

	if err = s.userRepo.SetStoreOwnership(ctx, user.ID, store.Name); err != nil {
		return store, "", err
	}

	token, err = utils.CreateJWTToken(utils.TokenClaims{
		ID:        user.ID.Hex(),
		Email:     user.Email,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		HasStore:  true,
		StoreName: store.Name,
	}, s.config.JWTSecret)
	if err != nil {
		return store, "", err
	}

	return store, token, nil
}

func (s *StoreServiceImpl) FollowStore(ctx context.Context, payload dto.FollowRequest) (store domain.Store, err error) {
	storeID, err := primitive.ObjectIDFromHex(payload.Store)
	if err != nil {
		return store, errs.ErrClient
	}

	if _, err = s.repo.GetStoreByID(ctx, storeID); err != nil {
		return store, err
	}

	if err = s.repo.AddFollower(ctx, storeID, payload.User); err != nil {
		return store, err
	}

	return s.repo.GetStoreByID(ctx, storeID)
}

func (s *StoreServiceImpl) UpdateStore(ctx context.Context, payload dto.StoreRequest) (store domain.Store, err error) {
	storeID, err := primitive.ObjectIDFromHex(payload.ID)
	if err != nil {
		return store, errs.ErrClient
	}

	store, err = s.repo.GetStoreByID(ctx, storeID)
	if err != nil {
		return store, err
	}

	user, err := s.userRepo.GetUserByEmail(ctx, payload.Owner)
	if err != nil {
		return store, err
	}

	store.Name = payload.Name
	store.Contact = payload.Contact
	store.Address = payload.Address
	store.Country = payload.Country
	store.Account = payload.Account
	store.Description = payload.Description
	store.Owner = domain.UserRef{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Profile: user.Profile,
	}

	if err = s.repo.UpdateStore(ctx, store); err != nil {
		return store, err
	}

	return store, nil
}

func (s *StoreServiceImpl) DeleteStore(ctx context.Context, id string) error {
	storeID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrClient
	}

	if _, err = s.repo.GetStoreByID(ctx, storeID); err != nil {
		return err
	}

	return s.repo.DeleteStore(ctx, storeID)
}

func (s *StoreServiceImpl) SendConfirmationSMS(ctx context.Context, payload dto.SMSRequest) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(payload.Receiver)
	params.SetFrom(s.config.TwilioConfig.From)
	params.SetBody(payload.Message)

	_, err := s.twilioClient.Api.CreateMessage(params)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SendConfirmationSMS").Msg("")
		return errs.ErrGateway
	}

	return nil
}
