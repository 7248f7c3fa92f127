package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "credgate/internal/delivery/context"
	"credgate/internal/domain/entity"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/repository"
	"credgate/internal/domain/service"
	mockRepo "credgate/internal/mocks/repository"
	mockSvc "credgate/internal/mocks/service"
	"credgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken    = "mock-jwt-token"
	testHash     = "$2a$12$hashedpassword"
	testPassword = "Password123"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	policy       *mockSvc.MockPasswordPolicy
	tokenService *mockSvc.MockTokenService
	challenges   *mockSvc.MockChallengeStore
	publisher    *mockSvc.MockEventPublisher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	f := userServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		policy:       mockSvc.NewMockPasswordPolicy(t),
		tokenService: mockSvc.NewMockTokenService(t),
		challenges:   mockSvc.NewMockChallengeStore(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	f.service = NewUserService(UserServiceParams{
		UserRepo:       f.userRepo,
		Hasher:         f.hasher,
		PasswordPolicy: f.policy,
		TokenService:   f.tokenService,
		ChallengeStore: f.challenges,
		Publisher:      f.publisher,
		Logger:         newDiscardLogger(),
	})

	return f
}

func registerInput() *usecase.RegisterUserInput {
	return &usecase.RegisterUserInput{
		Username:  "testUser",
		Password:  testPassword,
		CaptchaID: "captcha-handle",
		Captcha:   "123456",
	}
}

func loginInput() *usecase.LoginInput {
	return &usecase.LoginInput{
		Username:  "testUser",
		Password:  testPassword,
		CaptchaID: "captcha-handle",
		Captcha:   "123456",
	}
}

func storedUser() *entity.User {
	return &entity.User{
		ID:           uuid.MustParse("0190f5c2-7a4e-7c1e-9a55-3c2f8b6d1e00"),
		Username:     "testUser",
		PasswordHash: testHash,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	input := registerInput()
	newID := uuid.New()

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(true)
	f.userRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
	f.policy.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	f.hasher.EXPECT().Hash(input.Password).Return(testHash, nil)
	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, input.Username, user.Username)
			assert.Equal(t, testHash, user.PasswordHash)
			user.ID = newID
		}).
		Return(nil)
	f.tokenService.EXPECT().DefaultTTL().Return(24 * time.Hour)
	f.tokenService.EXPECT().Issue(input.Username, 24*time.Hour).Return(testToken, nil)
	f.publisher.EXPECT().
		PublishAuthEvent(ctx, mock.MatchedBy(func(e *service.AuthEvent) bool {
			return e.Type == service.AuthEventUserRegistered &&
				e.Subject == input.Username &&
				e.UserID == newID.String() &&
				e.RequestID == "req-42"
		})).
		Return(nil)

	output, err := f.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, newID, output.User.ID)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, testToken, output.Token)
}

func TestUserService_RegisterUser_InvalidCaptcha(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(false)

	output, err := f.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCaptchaInvalid))
	assert.Equal(t, "驗證碼錯誤", err.Error())
	f.userRepo.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_RegisterUser_UsernameExists(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(true)
	f.userRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(true, nil)

	_, err := f.service.RegisterUser(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_RegisterUser_WeakPassword(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()
	input.Password = "abc"

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(true)
	f.userRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
	f.policy.EXPECT().ValidatePasswordStrength("abc").
		Return(domainerrors.ErrPasswordStrength.WrapMessage("too short"))

	_, err := f.service.RegisterUser(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	f.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(true)
	f.userRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
	f.policy.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	f.hasher.EXPECT().Hash(input.Password).Return("", errors.New("entropy exhausted"))

	_, err := f.service.RegisterUser(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_RegisterUser_LostRace(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(true)
	f.userRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
	f.policy.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	f.hasher.EXPECT().Hash(input.Password).Return(testHash, nil)
	f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.Wrap(repository.ErrUsernameTaken, input.Username))

	_, err := f.service.RegisterUser(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	f.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestUserService_RegisterUser_ExistsLookupFails(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()
	dbErr := errors.New("connection reset")

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(true)
	f.userRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, dbErr)

	_, err := f.service.RegisterUser(ctx, input)

	assert.True(t, errors.Is(err, dbErr))
}

func TestUserService_RegisterUser_PublishFailureIgnored(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := registerInput()

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(true)
	f.userRepo.EXPECT().ExistsByUsername(ctx, input.Username).Return(false, nil)
	f.policy.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	f.hasher.EXPECT().Hash(input.Password).Return(testHash, nil)
	f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	f.tokenService.EXPECT().DefaultTTL().Return(time.Hour)
	f.tokenService.EXPECT().Issue(input.Username, time.Hour).Return(testToken, nil)
	f.publisher.EXPECT().PublishAuthEvent(ctx, mock.Anything).Return(errors.New("topic gone"))

	output, err := f.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, testToken, output.Token)
}

func TestUserService_Login_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := loginInput()
	user := storedUser()

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(true)
	f.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(user, nil)
	f.hasher.EXPECT().Check(input.Password, testHash).Return(true)
	f.tokenService.EXPECT().DefaultTTL().Return(24 * time.Hour)
	f.tokenService.EXPECT().Issue(input.Username, 24*time.Hour).Return(testToken, nil)
	f.publisher.EXPECT().
		PublishAuthEvent(ctx, mock.MatchedBy(func(e *service.AuthEvent) bool {
			return e.Type == service.AuthEventUserLoggedIn && e.UserID == user.ID.String()
		})).
		Return(nil)

	output, err := f.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, testToken, output.Token)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_InvalidCaptcha(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := loginInput()

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(false)

	_, err := f.service.Login(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrCaptchaInvalid))
	f.userRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := loginInput()

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(true)
	f.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(storedUser(), nil)
	f.hasher.EXPECT().Check(input.Password, testHash).Return(false)

	_, err := f.service.Login(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	f.tokenService.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
}

func TestUserService_Login_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := loginInput()

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(true)
	f.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Login(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, domainerrors.ErrInvalidCredentials.Error(), err.Error())
}

func TestUserService_Login_TokenIssueFailure(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	input := loginInput()

	f.challenges.EXPECT().Verify(ctx, input.CaptchaID, input.Captcha).Return(true)
	f.userRepo.EXPECT().FindByUsername(ctx, input.Username).Return(storedUser(), nil)
	f.hasher.EXPECT().Check(input.Password, testHash).Return(true)
	f.tokenService.EXPECT().DefaultTTL().Return(time.Hour)
	f.tokenService.EXPECT().Issue(input.Username, time.Hour).Return("", domainerrors.ErrSigningKeyMissing)

	_, err := f.service.Login(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
	f.publisher.AssertNotCalled(t, "PublishAuthEvent", mock.Anything, mock.Anything)
}

func TestUserService_ValidateToken(t *testing.T) {
	f := createTestUserService(t)

	f.tokenService.EXPECT().Validate(testToken).Return(true)
	f.tokenService.EXPECT().Validate("invalid-token").Return(false)

	assert.True(t, f.service.ValidateToken(context.Background(), testToken))
	assert.False(t, f.service.ValidateToken(context.Background(), "invalid-token"))
}

func TestUserService_GetProfile_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := storedUser()

	f.tokenService.EXPECT().Validate(testToken).Return(true)
	f.tokenService.EXPECT().GetSubject(testToken).Return("testUser", nil)
	f.userRepo.EXPECT().FindByUsername(ctx, "testUser").Return(user, nil)

	profile, err := f.service.GetProfile(ctx, testToken)

	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, "testUser", profile.Username)
}

func TestUserService_GetProfile_UserNotFound(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.tokenService.EXPECT().Validate(testToken).Return(true)
	f.tokenService.EXPECT().GetSubject(testToken).Return("testUser", nil)
	f.userRepo.EXPECT().FindByUsername(ctx, "testUser").Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetProfile(ctx, testToken)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_GetProfile_InvalidToken(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.tokenService.EXPECT().Validate("invalid-token").Return(false)

	_, err := f.service.GetProfile(ctx, "invalid-token")

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	f.userRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}

func TestUserService_GetProfile_SubjectUnreadable(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.tokenService.EXPECT().Validate(testToken).Return(true)
	f.tokenService.EXPECT().GetSubject(testToken).Return("", domainerrors.ErrInvalidToken)

	_, err := f.service.GetProfile(ctx, testToken)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
