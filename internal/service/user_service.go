package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/model"
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/security"
	"CampaignLens/internal/repository"
	"context"
	"errors"
	"time"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) error
	Login(ctx context.Context, dto *dto.CredentialDTO) (*dto.TokenDTO, error)
	Logout(ctx context.Context, token string) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	tokens   *security.TokenManager
	cache    Cache
}

func NewUserService(userRepo repository.UserRepo, tokens *security.TokenManager, cache Cache) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		cache:    cache,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: regDTO.Username,
		Password: passwordHash,
	}
	// 并发注册同名用户时由唯一索引兜底
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return ErrUserExist
		}
		return err
	}
	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if err = security.CheckPasswordHash(credDTO.Password, user.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return nil, ErrPasswordIncorrect
		}
		return nil, err
	}

	token, _, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{UserID: user.ID, Token: token}, nil
}

// Logout 将 Token 签名加入黑名单，保留至 Token 自然过期
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return ErrParamInvalid
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.cache.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, true, ttl)
}
