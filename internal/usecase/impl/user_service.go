// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "credgate/internal/delivery/context"
	"credgate/internal/domain/entity"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/repository"
	"credgate/internal/domain/service"
	"credgate/internal/errors"
	"credgate/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	policy       service.PasswordPolicy
	tokenService service.TokenService
	challenges   service.ChallengeStore
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	PasswordPolicy service.PasswordPolicy
	TokenService   service.TokenService
	ChallengeStore service.ChallengeStore
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		policy:       params.PasswordPolicy,
		tokenService: params.TokenService,
		challenges:   params.ChallengeStore,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser checks the captcha before anything touches persistence, then
// creates the account and signs the caller in.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	if !srv.challenges.Verify(ctx, input.CaptchaID, input.Captcha) {
		srv.log(ctx).Warn("Captcha rejected during registration", slog.String("username", input.Username))

		return nil, domainerrors.ErrCaptchaInvalid
	}

	exists, err := srv.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username availability")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists
	}

	if err := srv.policy.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Info("Password rejected by policy", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		// Lost a race with another registration for the same name.
		if errors.Is(err, repository.ErrUsernameTaken) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.issueToken(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.AuthEventUserRegistered, user)
	srv.log(ctx).Info("User registered", slog.String("username", user.Username), slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user, Token: token}, nil
}

// Login verifies the captcha and then the credentials. Unknown user and wrong
// password are reported identically.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if !srv.challenges.Verify(ctx, input.CaptchaID, input.Captcha) {
		srv.log(ctx).Warn("Captcha rejected during login", slog.String("username", input.Username))

		return nil, domainerrors.ErrCaptchaInvalid
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Info("Login for unknown user", slog.String("username", input.Username))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Password mismatch during login", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.issueToken(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.AuthEventUserLoggedIn, user)

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

func (srv *userService) ValidateToken(_ context.Context, token string) bool {
	return srv.tokenService.Validate(token)
}

// GetProfile requires a live token even though GetSubject alone ignores expiry.
func (srv *userService) GetProfile(ctx context.Context, token string) (*entity.User, error) {
	if !srv.tokenService.Validate(token) {
		return nil, domainerrors.ErrInvalidToken
	}

	username, err := srv.tokenService.GetSubject(token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

func (srv *userService) issueToken(ctx context.Context, subject string) (string, error) {
	token, err := srv.tokenService.Issue(subject, srv.tokenService.DefaultTTL())
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.String("subject", subject), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return token, nil
}

// publish reports an auth event. Failures are logged and never fail the flow.
func (srv *userService) publish(ctx context.Context, eventType string, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	event := &service.AuthEvent{
		Type:       eventType,
		Subject:    user.Username,
		UserID:     user.ID.String(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishAuthEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish auth event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}
