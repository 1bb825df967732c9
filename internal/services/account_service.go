package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	dbm "wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/internal/repositories"
	"wander/pkg/auth"
	"wander/pkg/memcache"
	"wander/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

// TokenIssuer mints a signed credential for a logged-in account.
// *auth.JWTVerifier satisfies it.
type TokenIssuer interface {
	Mint(userID uuid.UUID, role string) (string, error)
}

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, req request_models.SignUpRequest) error
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetIdentity(ctx context.Context, subjectID string) (*auth.Identity, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, newPassword string) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	issuer      TokenIssuer
	resetTokens memcache.ResetTokenStore
	mail        IMailService
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	issuer TokenIssuer,
	resetTokens memcache.ResetTokenStore,
	mail IMailService,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		issuer:      issuer,
		resetTokens: resetTokens,
		mail:        mail,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, req request_models.SignUpRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &dbm.Account{
		Name:         req.DisplayName,
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         "user",
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(
	ctx context.Context, req request_models.LoginRequest,
) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.issuer.Mint(account.ID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		Token:   token,
		Account: *buildAccountResponse(account),
	}, nil
}

// GetIdentity resolves a verified subject identifier to a full Identity.
// Used by the auth gate; also backs the /accounts/me endpoint.
func (a *AccountService) GetIdentity(ctx context.Context, subjectID string) (*auth.Identity, error) {
	account, err := a.accountRepo.FindByID(ctx, subjectID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &auth.Identity{
		ID:          account.ID,
		Email:       account.Email,
		DisplayName: account.Name,
		Role:        account.Role,
		CreatedAt:   account.CreatedAt,
	}, nil
}

func (a *AccountService) RequestPasswordReset(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Do not reveal whether the address is registered.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}
	a.resetTokens.Set(token, account.Email, resetTokenTTL)

	if err := a.mail.SendMailToResetPassword(account.Email, token); err != nil {
		log.Error().Err(err).Msg("failed to send password reset mail")
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	email := a.resetTokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidCredentials
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := a.accountRepo.UpdatePasswordHash(ctx, email, hashed); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func buildAccountResponse(account *dbm.Account) *response_models.AccountResponse {
	return &response_models.AccountResponse{
		ID:          account.ID.String(),
		Email:       account.Email,
		DisplayName: account.Name,
		Role:        account.Role,
		CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(account.CreatedAt)),
	}
}
