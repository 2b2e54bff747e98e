package document_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go-emprecords/internal/document"
	documenterrors "go-emprecords/internal/document/errors"
	documentMock "go-emprecords/internal/document/mock"
	"go-emprecords/internal/employee"
	employeeMock "go-emprecords/internal/employee/mock"
	"go-emprecords/internal/storage"
	storageMock "go-emprecords/internal/storage/mock"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   document.Service
	repo      *documentMock.MockRepository
	employees *employeeMock.MockRepository
	storage   *storageMock.MockStorage
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := documentMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockRepository(ctrl)
	store := storageMock.NewMockStorage(ctrl)

	return &serviceDeps{
		service:   document.NewService(repo, employees, store),
		repo:      repo,
		employees: employees,
		storage:   store,
	}
}

func strPtr(s string) *string { return &s }

func TestService_GetDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("no row yields empty list", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmployeeID(ctx, "EMP-1").Return(nil, gorm.ErrRecordNotFound)

		res, err := deps.service.GetDocuments(ctx, "EMP-1")

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("only set columns are listed", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmployeeID(ctx, "EMP-1").Return(&document.EmployeeDocument{
			EmployeeID:    "EMP-1",
			SalarySlipURL: strPtr("/uploads/slip.pdf"),
		}, nil)

		res, err := deps.service.GetDocuments(ctx, "EMP-1")

		assert.NoError(t, err)
		assert.Equal(t, []document.DocumentEntry{{DocType: "salary_slip", FilePath: "/uploads/slip.pdf"}}, res)
	})

	t.Run("db error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByEmployeeID(ctx, "EMP-1").Return(nil, errors.New("db down"))

		_, err := deps.service.GetDocuments(ctx, "EMP-1")

		assert.EqualError(t, err, "db down")
	})
}

func TestService_SaveDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns stored documents", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := document.SaveDocumentsRequest{OfferLetterURL: strPtr("https://x/offer.pdf")}

		gomock.InOrder(
			deps.repo.EXPECT().Upsert(ctx, "EMP-1", req.OfferLetterURL, (*string)(nil)).Return(nil),
			deps.repo.EXPECT().FindByEmployeeID(ctx, "EMP-1").Return(&document.EmployeeDocument{
				EmployeeID:     "EMP-1",
				OfferLetterURL: strPtr("https://x/offer.pdf"),
				SalarySlipURL:  strPtr("https://x/slip.pdf"),
			}, nil),
		)

		res, err := deps.service.SaveDocuments(ctx, "EMP-1", req)

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "offer_letter", res[0].DocType)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Upsert(ctx, "EMP-404", gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23503"})

		_, err := deps.service.SaveDocuments(ctx, "EMP-404", document.SaveDocumentsRequest{})

		assert.ErrorIs(t, err, documenterrors.ErrEmployeeNotFound)
	})
}

func TestService_UploadDocument(t *testing.T) {
	ctx := context.Background()
	upload := func() document.FileUpload {
		return document.FileUpload{
			Filename:    "Offer.PDF",
			ContentType: "application/pdf",
			Size:        4,
			Body:        strings.NewReader("%PDF"),
		}
	}

	t.Run("invalid doc type", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.UploadDocument(ctx, "EMP-1", "payslip", upload())

		assert.ErrorIs(t, err, documenterrors.ErrInvalidDocType)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP-404").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UploadDocument(ctx, "EMP-404", "offer_letter", upload())

		assert.ErrorIs(t, err, documenterrors.ErrEmployeeNotFound)
	})

	t.Run("success updates only the uploaded column", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP-1").Return(&employee.Employee{ID: 1, EmployeeID: "EMP-1"}, nil)
		deps.storage.EXPECT().
			Put(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, obj storage.Object) (string, error) {
				assert.True(t, strings.HasPrefix(obj.Key, "documents/offer_letter/"))
				assert.True(t, strings.HasSuffix(obj.Key, ".pdf"))
				body, _ := io.ReadAll(obj.Body)
				assert.Equal(t, "%PDF", string(body))
				return "/uploads/" + obj.Key, nil
			})
		deps.repo.EXPECT().
			Upsert(ctx, "EMP-1", gomock.Not(gomock.Nil()), (*string)(nil)).
			Return(nil)

		res, err := deps.service.UploadDocument(ctx, "EMP-1", " Offer_Letter ", upload())

		assert.NoError(t, err)
		assert.Equal(t, "offer_letter", res.DocType)
		assert.True(t, strings.HasPrefix(res.FilePath, "/uploads/documents/offer_letter/"))
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP-1").Return(&employee.Employee{ID: 1, EmployeeID: "EMP-1"}, nil)
		deps.storage.EXPECT().Put(ctx, gomock.Any()).Return("", errors.New("disk full"))

		_, err := deps.service.UploadDocument(ctx, "EMP-1", "salary_slip", upload())

		assert.ErrorIs(t, err, storage.ErrUploadFailed)
	})

	t.Run("storage app error passes through", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().FindByEmployeeID(ctx, "EMP-1").Return(&employee.Employee{ID: 1, EmployeeID: "EMP-1"}, nil)
		deps.storage.EXPECT().Put(ctx, gomock.Any()).Return("", storage.ErrUnavailable)

		_, err := deps.service.UploadDocument(ctx, "EMP-1", "salary_slip", upload())

		assert.ErrorIs(t, err, storage.ErrUnavailable)
	})
}

// Deleting an employee cascades to employee_documents, so the row lookup
// after a delete comes back empty and the list must be [].
func TestService_GetDocuments_AfterEmployeeDelete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	gomock.InOrder(
		deps.repo.EXPECT().FindByEmployeeID(ctx, "EMP-9").Return(&document.EmployeeDocument{
			EmployeeID:     "EMP-9",
			OfferLetterURL: strPtr("/uploads/documents/offer_letter/a.pdf"),
		}, nil),
		deps.repo.EXPECT().FindByEmployeeID(ctx, "EMP-9").Return(nil, gorm.ErrRecordNotFound),
	)

	before, err := deps.service.GetDocuments(ctx, "EMP-9")
	assert.NoError(t, err)
	assert.Len(t, before, 1)

	after, err := deps.service.GetDocuments(ctx, "EMP-9")
	assert.NoError(t, err)
	assert.NotNil(t, after)
	assert.Empty(t, after)
}
