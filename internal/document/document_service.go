package document

import (
	"context"
	"errors"
	"path"
	"strings"

	documenterrors "go-emprecords/internal/document/errors"
	"go-emprecords/internal/employee"
	"go-emprecords/internal/shared/apperror"
	"go-emprecords/internal/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	SaveDocuments(ctx context.Context, employeeID string, req SaveDocumentsRequest) ([]DocumentEntry, error)
	GetDocuments(ctx context.Context, employeeID string) ([]DocumentEntry, error)
	UploadDocument(ctx context.Context, employeeID, docType string, file FileUpload) (DocumentEntry, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	storage   storage.Storage
	logger    *zap.Logger
}

func NewService(repo Repository, employees employee.Repository, store storage.Storage, logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{repo: repo, employees: employees, storage: store, logger: l}
}

func (s *service) SaveDocuments(ctx context.Context, employeeID string, req SaveDocumentsRequest) ([]DocumentEntry, error) {
	s.logger.Debug("save documents requested", zap.String("employee_id", employeeID))

	if err := s.repo.Upsert(ctx, employeeID, req.OfferLetterURL, req.SalarySlipURL); err != nil {
		s.logger.Error("save documents failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("save documents success", zap.String("employee_id", employeeID))
	return s.GetDocuments(ctx, employeeID)
}

func (s *service) GetDocuments(ctx context.Context, employeeID string) ([]DocumentEntry, error) {
	doc, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []DocumentEntry{}, nil
	}
	if err != nil {
		s.logger.Error("get documents failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	entries := []DocumentEntry{}
	if doc.OfferLetterURL != nil {
		entries = append(entries, DocumentEntry{DocType: DocTypeOfferLetter, FilePath: *doc.OfferLetterURL})
	}
	if doc.SalarySlipURL != nil {
		entries = append(entries, DocumentEntry{DocType: DocTypeSalarySlip, FilePath: *doc.SalarySlipURL})
	}
	return entries, nil
}

// UploadDocument stores the file and records its URL in the column named by
// docType, leaving the other column untouched.
func (s *service) UploadDocument(ctx context.Context, employeeID, docType string, file FileUpload) (DocumentEntry, error) {
	docType = strings.ToLower(strings.TrimSpace(docType))
	if docType != DocTypeOfferLetter && docType != DocTypeSalarySlip {
		return DocumentEntry{}, documenterrors.ErrInvalidDocType
	}

	if _, err := s.employees.FindByEmployeeID(ctx, employeeID); err != nil {
		return DocumentEntry{}, mapRepositoryError(err)
	}

	url, err := s.storage.Put(ctx, storage.Object{
		Key:         storage.NewKey(path.Join("documents", docType), file.Filename),
		ContentType: file.ContentType,
		Size:        file.Size,
		Body:        file.Body,
	})
	if err != nil {
		s.logger.Error("upload document store failed",
			zap.String("employee_id", employeeID),
			zap.String("doc_type", docType),
			zap.Error(err),
		)
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return DocumentEntry{}, err
		}
		return DocumentEntry{}, storage.ErrUploadFailed.WithCause(err)
	}

	var offerLetter, salarySlip *string
	if docType == DocTypeOfferLetter {
		offerLetter = &url
	} else {
		salarySlip = &url
	}

	if err := s.repo.Upsert(ctx, employeeID, offerLetter, salarySlip); err != nil {
		s.logger.Error("upload document persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return DocumentEntry{}, mapRepositoryError(err)
	}

	s.logger.Info("upload document success",
		zap.String("employee_id", employeeID),
		zap.String("doc_type", docType),
		zap.String("url", url),
	)
	return DocumentEntry{DocType: docType, FilePath: url}, nil
}
