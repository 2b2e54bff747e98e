package employee

import (
	"bytes"
	"context"
	"errors"
	"io"

	employeeerrors "go-emprecords/internal/employee/errors"
	"go-emprecords/internal/shared/apperror"
	"go-emprecords/internal/storage"

	"github.com/disintegration/imaging"
)

const (
	profileImageMaxSide = 512
	profileImageQuality = 85
)

// normalizeProfileImage decodes any supported image, fits it into a
// 512x512 box and re-encodes it as JPEG.
func normalizeProfileImage(r io.Reader) (*bytes.Buffer, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, employeeerrors.ErrInvalidImage.WithCause(err)
	}

	img = imaging.Fit(img, profileImageMaxSide, profileImageMaxSide, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(profileImageQuality)); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *service) storeProfileImage(ctx context.Context, upload ImageUpload) (string, error) {
	buf, err := normalizeProfileImage(upload.Body)
	if err != nil {
		return "", err
	}

	url, err := s.storage.Put(ctx, storage.Object{
		Key:         storage.NewKey("profiles", "image.jpg"),
		ContentType: "image/jpeg",
		Size:        int64(buf.Len()),
		Body:        buf,
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return "", err
		}
		return "", storage.ErrUploadFailed.WithCause(err)
	}
	return url, nil
}
