package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"credgate/config"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/domain/service"
	"credgate/internal/errors"
)

const (
	defaultMinPasswordLength = 6
	// bcrypt ignores everything past 72 bytes
	defaultMaxPasswordLength = 72
)

type passwordPolicy struct {
	cfg config.PasswordStrengthConfig
}

// NewPasswordPolicy builds the strength checks used at registration.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	var strength config.PasswordStrengthConfig
	if cfg != nil && cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}

	return newPasswordPolicy(strength)
}

func newPasswordPolicy(strength config.PasswordStrengthConfig) *passwordPolicy {
	if strength.MinLength <= 0 {
		strength.MinLength = defaultMinPasswordLength
	}
	if strength.MaxLength <= 0 || strength.MaxLength > defaultMaxPasswordLength {
		strength.MaxLength = defaultMaxPasswordLength
	}

	return &passwordPolicy{cfg: strength}
}

// ValidatePasswordStrength returns an error wrapping ErrPasswordStrength or
// ErrPasswordForbiddenWords describing the first rule the password breaks.
func (p *passwordPolicy) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < p.cfg.MinLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "password must be at least %d characters long", p.cfg.MinLength)
	}
	if len(password) > p.cfg.MaxLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "password must be at most %d bytes long", p.cfg.MaxLength)
	}
	if p.cfg.RequireLowercase && !p.hasLowercase(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one lowercase letter")
	}
	if p.cfg.RequireUppercase && !p.hasUppercase(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one uppercase letter")
	}
	if p.cfg.RequireNumbers && !p.hasNumbers(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one number")
	}
	if p.cfg.RequireSpecial && !p.hasSpecialChars(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one special character")
	}
	if p.containsForbiddenWords(password, p.cfg.ForbiddenWords) {
		return errors.Wrap(domainerrors.ErrPasswordForbiddenWords, "password contains forbidden words")
	}

	return nil
}

func (p *passwordPolicy) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (p *passwordPolicy) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (p *passwordPolicy) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (p *passwordPolicy) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (p *passwordPolicy) containsForbiddenWords(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if word != "" && strings.Contains(lower, strings.ToLower(word)) {
			return true
		}
	}

	return false
}
