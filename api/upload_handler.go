package api

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bazarche/bazarche-backend/errs"
)

// maxUploadSize caps admin image uploads at 10MB.
const maxUploadSize = 10 * 1024 * 1024

var allowedImageTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/webp":    ".webp",
	"image/gif":     ".gif",
	"image/svg+xml": ".svg",
}

type uploadHandler struct {
	responder     Responder
	logger        zerolog.Logger
	s3Client      *s3.Client
	bucket        string
	publicBaseURL string
}

func newUploadHandler(s3Client *s3.Client, bucket, publicBaseURL string) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		s3Client:      s3Client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// uploadImage stores an admin-submitted image in object storage and returns
// its public URL.
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.s3Client == nil || h.bucket == "" {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "image uploads are not configured"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("could not parse upload form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("missing file field"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		ext, ok := allowedImageTypes[contentType]
		if !ok {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("unsupported image type", "file", contentType))
			return
		}

		key := path.Join("uploads", uuid.New().String()+ext)
		_, err = h.s3Client.PutObject(r.Context(), &s3.PutObjectInput{
			Bucket:      aws.String(h.bucket),
			Key:         aws.String(key),
			Body:        file,
			ContentType: aws.String(contentType),
		})
		if err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("Failed to store uploaded image")
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("could not store uploaded image", err))
			return
		}

		url := fmt.Sprintf("%s/%s", h.publicBaseURL, key)
		h.logger.Info().Str("key", key).Int64("size", header.Size).Msg("Image uploaded")

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{"url": url, "key": key})
	}
}
