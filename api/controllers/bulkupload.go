package controllers

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/shiprakart/seller-backend/api/responses"
	"github.com/shiprakart/seller-backend/internal/bulkimport"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

// BulkUpload ingests a CSV of products, variants and image URLs in one
// transaction. The upload is spooled to a temp file that the import service
// removes when it finishes.
func BulkUpload(svc bulkimport.Service, tempDir string, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, ok := requireSeller(w, r, logg)
		if !ok {
			return
		}

		if err := parseMultipart(r, maxUploadMB); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		src, _, err := r.FormFile("file")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "A CSV file is required"))
			return
		}
		defer src.Close()

		if err := os.MkdirAll(tempDir, 0o755); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "preparing upload directory"))
			return
		}
		tmp, err := os.CreateTemp(tempDir, "bulk-*.csv")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating temp file"))
			return
		}
		if _, err := io.Copy(tmp, src); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "writing temp file"))
			return
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmp.Name())
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "writing temp file"))
			return
		}

		count, err := svc.ImportFile(r.Context(), sellerID, tmp.Name())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, http.StatusOK, fmt.Sprintf("Successfully imported %d products", count))
	}
}
