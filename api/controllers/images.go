package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shiprakart/seller-backend/api/responses"
	"github.com/shiprakart/seller-backend/internal/catalog"
	pkgerrors "github.com/shiprakart/seller-backend/pkg/errors"
	"github.com/shiprakart/seller-backend/pkg/logger"
)

// UploadImages stores up to five gallery images for a product. The first
// image in the batch becomes the new main image.
func UploadImages(svc catalog.Service, maxUploadMB int, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireSeller(w, r, logg); !ok {
			return
		}

		productID, err := uuid.Parse(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id"))
			return
		}

		if err := parseMultipart(r, maxUploadMB); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		headers := formFiles(r, "images")
		files := make([]catalog.UploadFile, 0, len(headers))
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "could not read uploaded file"))
				return
			}
			defer f.Close()
			files = append(files, catalog.UploadFile{Reader: f, Filename: fh.Filename})
		}

		images, err := svc.UploadImages(r.Context(), productID, files)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WritePayload(w, http.StatusCreated, map[string]any{
			"message": "Images uploaded successfully",
			"images":  images,
		})
	}
}
