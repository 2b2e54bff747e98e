package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type uploadFunc func(ctx context.Context, body io.Reader, params uploader.UploadParams) (*uploader.UploadResult, error)

type CloudinaryStorage struct {
	folder string
	upload uploadFunc
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryStorage{
		folder: folder,
		upload: func(ctx context.Context, body io.Reader, params uploader.UploadParams) (*uploader.UploadResult, error) {
			return cld.Upload.Upload(ctx, body, params)
		},
	}, nil
}

func (s *CloudinaryStorage) Name() string { return "cloudinary" }

func (s *CloudinaryStorage) Put(ctx context.Context, obj Object) (string, error) {
	key, err := CleanKey(obj.Key)
	if err != nil {
		return "", err
	}

	dir, file := path.Split(key)
	folder := strings.Trim(path.Join(s.folder, dir), "/")

	res, err := s.upload(ctx, obj.Body, uploader.UploadParams{
		PublicID:     strings.TrimSuffix(file, path.Ext(file)),
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("cloudinary upload: empty secure_url")
	}
	return res.SecureURL, nil
}
