package service

import (
	"context"
	"time"

	"github.com/redromiee/bag-tracker/internal/apierror"
	"github.com/redromiee/bag-tracker/internal/config"
	"github.com/redromiee/bag-tracker/internal/dto"
	"github.com/redromiee/bag-tracker/internal/model"
	"github.com/redromiee/bag-tracker/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 7 * 24 * time.Hour

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	VerifyToken(token string) (*dto.UserResponse, error)
	CheckApproval(ctx context.Context, token string) (*dto.ApprovalResponse, error)
}

type authService struct {
	store store.Store
	cfg   *config.Config
}

func NewAuthService(st store.Store, cfg *config.Config) AuthService {
	return &authService{store: st, cfg: cfg}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) error {
	users, err := s.store.Users(ctx)
	if err != nil {
		return storeError(err)
	}
	records, err := users.Records(ctx)
	if err != nil {
		return storeError(err)
	}
	for _, r := range records {
		if r.Fields[model.ColUsername] == req.Username {
			return apierror.New(apierror.CodeDuplicateUsername, "username already registered")
		}
		if r.Fields[model.ColMobile] == req.Mobile {
			return apierror.New(apierror.CodeDuplicateMobile, "mobile number already registered")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return err
	}
	// Approval status starts empty; an admin flips it to "Approved" in the
	// sheet before the account can log in.
	err = users.Append(ctx, map[string]string{
		model.ColUsername:       req.Username,
		model.ColPassword:       string(hash),
		model.ColName:           req.Name,
		model.ColMobile:         req.Mobile,
		model.ColEmail:          req.Email,
		model.ColBranch:         req.Branch,
		model.ColCreatedAt:      time.Now().Format(model.TimestampLayout),
		model.ColLastLogin:      "",
		model.ColApprovalStatus: "",
	})
	if err != nil {
		return storeError(err)
	}
	return nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	records, err := users.Records(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	idx := -1
	for i, r := range records {
		if r.Fields[model.ColUsername] == req.Username {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apierror.New(apierror.CodeInvalidCredentials, "invalid username or password")
	}
	user := records[idx].Fields

	if bcrypt.CompareHashAndPassword([]byte(user[model.ColPassword]), []byte(req.Password)) != nil {
		return nil, apierror.New(apierror.CodeInvalidCredentials, "invalid username or password")
	}
	if user[model.ColApprovalStatus] != model.ApprovalGranted {
		return nil, apierror.New(apierror.CodeApprovalRequired, "account pending admin approval")
	}

	if err := users.UpdateCell(ctx, idx, model.ColLastLogin, time.Now().Format(model.TimestampLayout)); err != nil {
		return nil, storeError(err)
	}

	token, err := s.issueToken(user[model.ColUsername], user[model.ColName], user[model.ColBranch])
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Status: "success",
		Token:  token,
		User: dto.UserResponse{
			Username: user[model.ColUsername],
			Name:     user[model.ColName],
			Branch:   user[model.ColBranch],
			Mobile:   user[model.ColMobile],
			Email:    user[model.ColEmail],
		},
	}, nil
}

// VerifyToken returns the token payload, or InvalidToken for both expired
// and tampered tokens — callers cannot tell the two apart.
func (s *authService) VerifyToken(tokenStr string) (*dto.UserResponse, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.New(apierror.CodeInvalidToken, "invalid or expired token")
	}
	username, _ := claims["username"].(string)
	name, _ := claims["name"].(string)
	branch, _ := claims["branch"].(string)
	if username == "" {
		return nil, apierror.New(apierror.CodeInvalidToken, "invalid or expired token")
	}
	return &dto.UserResponse{Username: username, Name: name, Branch: branch}, nil
}

func (s *authService) CheckApproval(ctx context.Context, token string) (*dto.ApprovalResponse, error) {
	payload, err := s.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	records, err := users.Records(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	for _, r := range records {
		if r.Fields[model.ColUsername] == payload.Username {
			status := r.Fields[model.ColApprovalStatus]
			if status == "" {
				status = "Pending"
			}
			return &dto.ApprovalResponse{
				Status:         "success",
				Approved:       status == model.ApprovalGranted,
				ApprovalStatus: status,
			}, nil
		}
	}
	return nil, apierror.New(apierror.CodeUserNotFound, "user not found")
}

func (s *authService) issueToken(username, name, branch string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"name":     name,
		"branch":   branch,
		"exp":      time.Now().Add(tokenTTL).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// storeError maps any adapter failure to the client-safe StoreUnavailable
// outcome; the underlying cause is for the server log only.
func storeError(err error) error {
	log.Error().Err(err).Msg("store adapter failure")
	return apierror.New(apierror.CodeStoreUnavailable, "data store unavailable")
}
