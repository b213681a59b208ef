package service

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/security"
	"context"
	"errors"
	"testing"
	"time"
)

func TestUserRegisterLoginLogout(t *testing.T) {
	m := newMemStore()
	cache := newFakeCache()
	tokens := security.NewTokenManager("test-secret", "campaignlens", time.Hour)
	svc := NewUserService(&fakeUserRepo{m}, tokens, cache)
	ctx := context.Background()

	cred := &dto.RegisterDTO{Username: "analyst", Password: "s3cret!"}
	if err := svc.Register(ctx, cred); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Register(ctx, cred); !errors.Is(err, ErrUserExist) {
		t.Errorf("duplicate register: err = %v", err)
	}
	for _, u := range m.users {
		if u.Password == cred.Password {
			t.Errorf("password stored in plain text")
		}
	}

	if _, err := svc.Login(ctx, &dto.CredentialDTO{Username: "nobody", Password: "x"}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user: err = %v", err)
	}
	if _, err := svc.Login(ctx, &dto.CredentialDTO{Username: "analyst", Password: "wrong!"}); !errors.Is(err, ErrPasswordIncorrect) {
		t.Errorf("wrong password: err = %v", err)
	}

	token, err := svc.Login(ctx, &dto.CredentialDTO{Username: "analyst", Password: "s3cret!"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := tokens.ValidateToken(token.Token)
	if err != nil || claims.UserID != token.UserID {
		t.Fatalf("issued token invalid: claims=%+v err=%v", claims, err)
	}

	if err = svc.Logout(ctx, token.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	sig, _ := security.ExtractSignature(token.Token)
	if cache.values[consts.TokenBlacklistKey+sig] != "true" {
		t.Errorf("token not blacklisted")
	}

	if err = svc.Logout(ctx, "not-a-token"); !errors.Is(err, ErrParamInvalid) {
		t.Errorf("invalid token: err = %v", err)
	}
}
