// Package challenge stores one-time numeric captcha codes keyed by opaque handles.
package challenge

import (
	"crypto/rand"
	"io"

	"credgate/config"
	domainerrors "credgate/internal/domain/errors"
	"credgate/internal/errors"
)

// Bytes at or above this value are rejected so that b%10 stays uniform.
const digitRejectThreshold = 250

// GenerateCode returns length decimal digits, each drawn independently and
// uniformly from crypto/rand. Leading zeros are kept.
func GenerateCode(length int) (string, error) {
	return generateCode(rand.Reader, length)
}

func generateCode(random io.Reader, length int) (string, error) {
	if err := checkLength(length); err != nil {
		return "", err
	}

	code := make([]byte, 0, length)
	buf := make([]byte, length*2)
	for len(code) < length {
		if _, err := io.ReadFull(random, buf); err != nil {
			return "", errors.Wrap(err, "failed to read random digits")
		}
		for _, b := range buf {
			if b >= digitRejectThreshold {
				continue
			}
			code = append(code, '0'+b%10)
			if len(code) == length {
				break
			}
		}
	}

	return string(code), nil
}

func checkLength(length int) error {
	if length < config.MinCaptchaLength || length > config.MaxCaptchaLength {
		return errors.Wrapf(domainerrors.ErrCaptchaLengthInvalid, "length %d outside %d..%d",
			length, config.MinCaptchaLength, config.MaxCaptchaLength)
	}

	return nil
}
