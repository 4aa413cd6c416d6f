package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront/internal/models"
	"storefront/internal/repository"
	"storefront/internal/util"

	"github.com/nanorand/nanorand"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const minPasswordLength = 6

type AuthConfig struct {
	AccessTTL      time.Duration
	ResetTokenTTL  time.Duration
	ResetRateLimit time.Duration
	ClientURL      string
}

type authService struct {
	users    repository.UserRepo
	products repository.ProductRepo
	hasher   PasswordHasher
	tokens   TokenProvider
	cache    Cache
	email    EmailSender
	cfg      AuthConfig
	log      *zap.Logger
	now      func() time.Time
}

// NewAuthService builds the account service. cache and email may be nil.
func NewAuthService(
	users repository.UserRepo,
	products repository.ProductRepo,
	hasher PasswordHasher,
	tokens TokenProvider,
	cache Cache,
	email EmailSender,
	cfg AuthConfig,
	log *zap.Logger,
) AuthService {
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = 10 * time.Minute
	}
	return &authService{
		users:    users,
		products: products,
		hasher:   hasher,
		tokens:   tokens,
		cache:    cache,
		email:    email,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

func (s *authService) issue(ctx context.Context, u *models.User) (*AuthResult, error) {
	token, exp, err := s.tokens.SignAccess(ctx, u.ID, u.Role, s.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp.Unix(), User: u}, nil
}

func (s *authService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(password) < minPasswordLength {
		return nil, ErrValidation
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	s.log.Info("user registered", zap.String("user_id", u.ID.Hex()))
	return s.issue(ctx, u)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !s.hasher.Compare(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(ctx, u)
}

func (s *authService) currentUser(ctx context.Context) (*models.User, error) {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *authService) Me(ctx context.Context) (*models.User, error) {
	return s.currentUser(ctx)
}

func (s *authService) UpdateProfile(ctx context.Context, patch ProfilePatch) (*models.User, error) {
	uid, _, err := requireAuth(ctx)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrValidation
		}
		fields["name"] = name
	}
	if patch.Phone != nil {
		fields["phone"] = strings.TrimSpace(*patch.Phone)
	}
	if patch.Avatar != nil {
		fields["avatar"] = *patch.Avatar
	}
	if patch.Addresses != nil {
		addrs := make([]models.Address, 0, len(*patch.Addresses))
		for _, a := range *patch.Addresses {
			if a.ID.IsZero() {
				a.ID = primitive.NewObjectID()
			}
			addrs = append(addrs, a)
		}
		fields["addresses"] = addrs
	}

	u, err := s.users.UpdateProfile(ctx, uid, fields)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *authService) ToggleWishlist(ctx context.Context, productID primitive.ObjectID) (*models.User, error) {
	u, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}

	present := false
	for _, id := range u.Wishlist {
		if id == productID {
			present = true
			break
		}
	}

	if present {
		err = s.users.RemoveFromWishlist(ctx, u.ID, productID)
	} else {
		p, perr := s.products.GetByID(ctx, productID)
		if perr != nil {
			return nil, perr
		}
		if p == nil {
			return nil, ErrProductNotFound
		}
		err = s.users.AddToWishlist(ctx, u.ID, productID)
	}
	if err != nil {
		return nil, err
	}
	return s.currentUser(ctx)
}

func (s *authService) Wishlist(ctx context.Context) ([]models.Product, error) {
	u, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.products.BatchGetByIDs(ctx, u.Wishlist)
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	rateKey := "pwreset:" + email

	if s.cache != nil {
		limited, err := s.cache.CheckRateLimit(ctx, rateKey)
		if err != nil {
			s.log.Warn("rate limit check failed", zap.Error(err))
		} else if limited {
			return ErrTooManyRequests
		}
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	plain, err := nanorand.Gen(40)
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(s.cfg.ResetTokenTTL)
	if err := s.users.SetResetToken(ctx, u.ID, util.Sha256Base64URL(plain), expiresAt); err != nil {
		return err
	}

	if s.email == nil {
		s.log.Warn("email delivery is not configured; reset link not sent", zap.String("user_id", u.ID.Hex()))
	} else {
		msg := EmailMessage{
			To:       u.Email,
			Subject:  "Password reset token",
			Template: "reset_password",
			Data: map[string]any{
				"name":     u.Name,
				"resetUrl": s.cfg.ClientURL + "/resetpassword/" + plain,
				"expires":  expiresAt.UTC().Format(time.RFC3339),
			},
		}
		if err := s.email.SendEmail(ctx, u.ID.Hex(), msg); err != nil {
			if cerr := s.users.ClearResetToken(ctx, u.ID); cerr != nil {
				s.log.Error("failed to clear reset token", zap.Error(cerr))
			}
			return err
		}
	}

	if s.cache != nil && s.cfg.ResetRateLimit > 0 {
		if err := s.cache.SetRateLimit(ctx, rateKey, s.cfg.ResetRateLimit); err != nil {
			s.log.Warn("failed to set rate limit", zap.Error(err))
		}
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, password string) (*AuthResult, error) {
	if token == "" {
		return nil, ErrInvalidResetToken
	}
	if len(password) < minPasswordLength {
		return nil, ErrValidation
	}

	u, err := s.users.GetByResetToken(ctx, util.Sha256Base64URL(token), s.now())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidResetToken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	if err := s.users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return nil, err
	}
	u.Password = hash
	u.ResetPasswordToken = ""
	u.ResetPasswordExpire = nil
	s.log.Info("password reset", zap.String("user_id", u.ID.Hex()))
	return s.issue(ctx, u)
}
