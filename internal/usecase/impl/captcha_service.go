package impl

import (
	"context"
	"log/slog"

	"credgate/config"
	deliverycontext "credgate/internal/delivery/context"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/service"
	"credgate/internal/errors"
	"credgate/internal/usecase"

	"go.uber.org/fx"
)

type captchaService struct {
	challenges service.ChallengeStore
	exposeCode bool
	logger     *slog.Logger
}

// CaptchaServiceParams holds dependencies for CaptchaService, injected by Fx.
type CaptchaServiceParams struct {
	fx.In

	ChallengeStore service.ChallengeStore
	Config         *config.Config
	Logger         *slog.Logger
}

func NewCaptchaService(params CaptchaServiceParams) usecase.CaptchaUsecase {
	exposeCode := false
	if params.Config != nil && params.Config.Captcha != nil {
		exposeCode = params.Config.Captcha.ExposeCode
	}

	return &captchaService{
		challenges: params.ChallengeStore,
		exposeCode: exposeCode,
		logger:     params.Logger,
	}
}

// GenerateCaptcha creates a challenge. The code is withheld unless the
// deployment is configured to expose it.
func (srv *captchaService) GenerateCaptcha(ctx context.Context) (*usecase.GenerateCaptchaOutput, error) {
	ch, err := srv.challenges.Generate(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to generate captcha", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCaptchaUnavailable, err.Error())
	}

	output := &usecase.GenerateCaptchaOutput{
		CaptchaID: ch.Handle,
		ExpiresAt: ch.ExpiresAt,
	}
	if srv.exposeCode {
		output.Code = ch.Code
	}

	return output, nil
}
