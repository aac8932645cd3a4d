package controllers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiprakart/seller-backend/api/middleware"
	"github.com/shiprakart/seller-backend/api/responses"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/logger"
	"github.com/shiprakart/seller-backend/pkg/storage"
)

// requireSeller pulls the authenticated seller from the context, writing a
// 401 when the auth middleware did not run.
func requireSeller(w http.ResponseWriter, r *http.Request, logg *logger.Logger) (uuid.UUID, bool) {
	sellerID, ok := middleware.SellerIDFromContext(r.Context())
	if !ok {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthenticated, "Access Denied: No token provided"))
		return uuid.Nil, false
	}
	return sellerID, true
}

func parseMultipart(r *http.Request, maxMB int) error {
	if err := r.ParseMultipartForm(int64(maxMB) << 20); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid multipart form")
	}
	return nil
}

// uploadOptionalFile stores a single form file and returns its URL, or nil
// when the field was not supplied.
func uploadOptionalFile(r *http.Request, store storage.ObjectStore, field string) (*string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, fmt.Sprintf("reading file %q", field))
	}
	defer file.Close()

	url, err := store.Upload(r.Context(), file, header.Filename)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("storing file %q", field))
	}
	return &url, nil
}

// formFiles returns all files uploaded under a multipart field name.
func formFiles(r *http.Request, field string) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	return r.MultipartForm.File[field]
}

func formValuePtr(r *http.Request, field string) *string {
	value := r.FormValue(field)
	if value == "" {
		return nil
	}
	return &value
}

// formBoolPtr treats "true"/"1" as true and anything else present as false.
func formBoolPtr(r *http.Request, field string) *bool {
	value := r.FormValue(field)
	if value == "" {
		return nil
	}
	b := value == "true" || value == "1"
	return &b
}

// formInt and formDecimal default malformed values to zero.
func formInt(r *http.Request, field string) int {
	n, err := strconv.Atoi(r.FormValue(field))
	if err != nil {
		return 0
	}
	return n
}

func formDecimal(r *http.Request, field string) decimal.Decimal {
	d, err := decimal.NewFromString(r.FormValue(field))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func formBool(r *http.Request, field string) bool {
	value := r.FormValue(field)
	return value == "true" || value == "1"
}
